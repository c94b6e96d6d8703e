package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bamboo-breakout/internal/audio"
	"github.com/vovakirdan/bamboo-breakout/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Bamboo Breakout SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. Scores are stored per-server, so all
users share the same high score. The server plays no sound.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.bamboo/host_key

Examples:
  bamboo serve                           # Listen on :23234 with auto-generated key
  bamboo serve --ssh :2222               # Listen on port 2222
  bamboo serve --host-key ./my_host_key  # Use specific host key
  bamboo serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, _, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	store, closeStore := openStore(logger)
	defer closeStore()

	srvCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	}
	factory := directorFactory(cfg, store, audio.Nop{})
	if flagSeed != 0 {
		// Every connection replays the same seed.
		base := factory
		factory = func(l *log.Logger, _ int64) (*tui.Director, error) {
			return base(l, flagSeed)
		}
	}

	server, err := tui.NewSSHServer(srvCfg, factory, logger)
	if err != nil {
		closeStore()
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting Bamboo Breakout SSH server on %s\n", srvCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		closeStore()
		fail("server: %v", err)
	}
}

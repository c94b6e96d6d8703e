package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bamboo-breakout/internal/arena"
	"github.com/vovakirdan/bamboo-breakout/internal/core"
	"github.com/vovakirdan/bamboo-breakout/internal/scene"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorOrange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// DrawWorld paints the arena onto s through v. The border box sits one
// cell outside the viewport grid.
func DrawWorld(s *core.Screen, w *arena.World, v Viewport) {
	s.DrawBox(v.Left-1, v.Top-1, v.Cols+2, v.Rows+2, core.ColorGray)

	// Side walls are the game-over edges.
	s.DrawVLine(v.Left-1, v.Top, v.Rows, '┃', core.ColorRed)
	s.DrawVLine(v.Left+v.Cols, v.Top, v.Rows, '┃', core.ColorRed)

	for _, n := range w.DrawOrder() {
		switch node := n.(type) {
		case *arena.Static:
			drawPaddle(s, node, v)
		case *arena.Ball:
			x, y := v.ToCell(node.Position())
			s.SetColored(x, y, '●', core.ColorBrightYellow)
		case *arena.Label:
			drawLabel(s, node, v)
		case *arena.Sprite:
			drawMessage(s, node, v)
		}
	}
}

func drawPaddle(s *core.Screen, p *arena.Static, v Viewport) {
	top := p.Position().Add(core.V(0, p.Size().Y/2-v.CellHeight()/2))
	x, y := v.ToCell(top)
	s.DrawVLine(x, y, v.Span(p.Size().Y), '█', core.ColorBrightGreen)
}

func drawLabel(s *core.Screen, l *arena.Label, v Viewport) {
	color := core.ColorWhite
	if l.Name() == scene.NameHighScore {
		color = core.ColorCyan
	}
	text := l.Text()
	x, y := v.ToCell(l.Position())
	s.DrawText(x-len([]rune(text))/2, y, text, color)
}

// drawMessage draws the gameMessage sprite as a framed caption once it is
// at least half grown.
func drawMessage(s *core.Screen, m *arena.Sprite, v Viewport) {
	if m.Scale() < 0.5 {
		return
	}
	text := scene.Caption(m.Texture())
	color := core.ColorOrange
	if m.Texture() == scene.TextureYouWon {
		color = core.ColorBrightGreen
	}

	w := max(v.Width(m.Size().X*m.Scale()), len([]rune(text))+4)
	h := max(v.Span(m.Size().Y*m.Scale()), 3)
	cx, cy := v.ToCell(m.Position())
	left, top := cx-w/2, cy-h/2

	for row := top; row < top+h; row++ {
		for col := left; col < left+w; col++ {
			s.Set(col, row, ' ')
		}
	}
	s.DrawBox(left, top, w, h, color)
	s.DrawText(cx-len([]rune(text))/2, cy, text, color)
}

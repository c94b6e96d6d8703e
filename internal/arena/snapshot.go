package arena

import "math"

// Snapshot contains the observable world state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick    uint64
	PaddleL float64
	PaddleR float64
	Score   string
	High    string
	Texture string
	Scale   float64

	// Ball state (each ball is 4 floats: X, Y, VX, VY)
	BallCount int
	BallData  []float64
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	data := make([]float64, 0, len(w.balls)*4)
	for _, b := range w.balls {
		data = append(data, b.pos.X, b.pos.Y, b.vel.X, b.vel.Y)
	}

	return Snapshot{
		Tick:      w.tick,
		PaddleL:   w.paddles[0].pos.Y,
		PaddleR:   w.paddles[1].pos.Y,
		Score:     w.board.text,
		High:      w.high.text,
		Texture:   w.message.texture,
		Scale:     w.message.scale,
		BallCount: len(w.balls),
		BallData:  data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.PaddleL)
	h = h*31 + math.Float64bits(snap.PaddleR)
	h = h*31 + math.Float64bits(snap.Scale)
	for _, s := range []string{snap.Score, snap.High, snap.Texture} {
		for i := 0; i < len(s); i++ {
			h = h*31 + uint64(s[i])
		}
	}
	h = h*31 + uint64(snap.BallCount) //#nosec G115 -- hash computation
	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}

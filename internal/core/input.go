package core

// PointerID identifies one touch or pointer for the lifetime of a gesture.
// Hosts pick the values: the window host uses ebiten touch IDs, the
// terminal host uses 0 for the mouse.
type PointerID int

// PointerPhase is the stage of a pointer gesture.
type PointerPhase int

const (
	PointerDown PointerPhase = iota // Touch began / button pressed
	PointerMove                     // Touch moved / drag
	PointerUp                       // Touch ended / button released
)

// String returns a human-readable name for the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerDown:
		return "Down"
	case PointerMove:
		return "Move"
	case PointerUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// PointerEvent is one pointer sample delivered by a host, in arena coordinates.
type PointerEvent struct {
	ID       PointerID
	Phase    PointerPhase
	Location Vec
}

package game

import (
	"github.com/vovakirdan/bamboo-breakout/internal/core"
	"github.com/vovakirdan/bamboo-breakout/internal/scene"
)

// Paddle identifies one of the two paddles.
type Paddle uint8

const (
	PaddleNone Paddle = iota
	PaddleLeft
	PaddleRight
)

// NodeName returns the scene node name of the paddle.
func (p Paddle) NodeName() string {
	switch p {
	case PaddleLeft:
		return scene.NamePaddleLeft
	case PaddleRight:
		return scene.NamePaddleRight
	default:
		return ""
	}
}

func (p Paddle) String() string {
	switch p {
	case PaddleLeft:
		return "left"
	case PaddleRight:
		return "right"
	default:
		return "none"
	}
}

// PaddleForNode maps a hit node to the paddle it controls.
// Each paddle is driven from its own sprite or its clicker strip.
func PaddleForNode(name string) Paddle {
	switch name {
	case scene.NameLeftClicker, scene.NamePaddleLeft:
		return PaddleLeft
	case scene.NameRightClicker, scene.NamePaddleRight:
		return PaddleRight
	default:
		return PaddleNone
	}
}

// PaddleController moves the paddles vertically within the arena frame.
type PaddleController struct {
	frame core.Rect
	nodes [3]scene.Node // Indexed by Paddle
}

// NewPaddleController returns a controller for the two paddle nodes.
func NewPaddleController(frame core.Rect, left, right scene.Node) *PaddleController {
	c := &PaddleController{frame: frame}
	c.nodes[PaddleLeft] = left
	c.nodes[PaddleRight] = right
	return c
}

// Move offsets the paddle by dy, keeping it fully inside the frame.
// It returns the new Y and false for an unknown paddle.
func (c *PaddleController) Move(p Paddle, dy float64) (float64, bool) {
	if p != PaddleLeft && p != PaddleRight {
		return 0, false
	}

	n := c.nodes[p]
	pos := n.Position()
	half := n.Size().Y / 2
	pos.Y = core.ClampF(pos.Y+dy, c.frame.Y+half, c.frame.MaxY()-half)
	n.SetPosition(pos)
	return pos.Y, true
}

// Y returns the paddle's vertical center.
func (c *PaddleController) Y(p Paddle) float64 {
	if p != PaddleLeft && p != PaddleRight {
		return 0
	}
	return c.nodes[p].Position().Y
}

// Package scene describes the scene-graph capability the game core uses to
// find named nodes and update what the player sees.
package scene

import (
	"time"

	"github.com/vovakirdan/bamboo-breakout/internal/core"
)

// Node names of the arena scene.
const (
	NameBall         = "ball"
	NameScoreboard   = "scoreboard"
	NameHighScore    = "highscore"
	NamePaddleLeft   = "paddleL"
	NamePaddleRight  = "paddleR"
	NameGameMessage  = "gameMessage"
	NameLeftClicker  = "leftClicker"
	NameRightClicker = "rightClicker"
)

// Textures shown by the gameMessage sprite.
const (
	TextureTapToPlay = "TapToPlay"
	TextureGameOver  = "GameOver"
	TextureYouWon    = "YouWon"
)

// Node is a positioned element of the scene.
type Node interface {
	Name() string
	Position() core.Vec
	SetPosition(p core.Vec)
	Size() core.Vec
}

// Label is a node that displays text.
type Label interface {
	Node
	Text() string
	SetText(s string)
}

// Sprite is a node that displays a texture.
type Sprite interface {
	Node
	Texture() string
	SetTexture(name string)
	Scale() float64
	// ScaleTo animates the sprite scale to s over d.
	ScaleTo(s float64, d time.Duration)
}

// Scene is the query surface of the host scene graph.
type Scene interface {
	// Node returns the first node with the given name.
	Node(name string) (Node, bool)
	// NodeAt returns the topmost visible node containing p.
	NodeAt(p core.Vec) (Node, bool)
	// Frame is the arena rectangle.
	Frame() core.Rect
}

// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-space-invaders/internal/types"
)

// Text is a positioned, colored string. Position is carried by Rect so
// callers can anchor it like any other sprite (center, midtop, ...);
// the draw call converts the rect origin back to a baseline.
type Text struct {
	Rect types.Rect

	message string
	face    font.Face
	clr     color.Color
	originX int // offset from Rect origin to the drawing baseline
	originY int
}

// NewText creates a text object at the origin; move it via Rect.
func NewText(message string, face font.Face, clr color.Color) *Text {
	t := &Text{
		message: message,
		face:    face,
		clr:     clr,
	}
	t.measure()
	return t
}

func (t *Text) measure() {
	b := text.BoundString(t.face, t.message)
	t.Rect.W = b.Dx()
	t.Rect.H = b.Dy()
	t.originX = -b.Min.X
	t.originY = -b.Min.Y
}

// SetMessage replaces the string, resizing the rect in place without
// moving it.
func (t *Text) SetMessage(message string) {
	t.message = message
	t.measure()
}

// SetColor changes the text color.
func (t *Text) SetColor(clr color.Color) {
	t.clr = clr
}

// Message returns the current string.
func (t *Text) Message() string {
	return t.message
}

// Draw renders the text at its rect position.
func (t *Text) Draw(screen *ebiten.Image) {
	text.Draw(screen, t.message, t.face, t.Rect.X+t.originX, t.Rect.Y+t.originY, t.clr)
}

// internal/input/keyboard.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = map[Key]ebiten.Key{
	KeyLeft:   ebiten.KeyArrowLeft,
	KeyRight:  ebiten.KeyArrowRight,
	KeyUp:     ebiten.KeyArrowUp,
	KeyDown:   ebiten.KeyArrowDown,
	KeySpace:  ebiten.KeySpace,
	KeyReturn: ebiten.KeyEnter,
	KeyEscape: ebiten.KeyEscape,
}

// Keyboard is the ebiten-backed input source used by the real game.
type Keyboard struct{}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) JustPressed(key Key) bool {
	return inpututil.IsKeyJustPressed(ebitenKeys[key])
}

func (k *Keyboard) IsHeld(key Key) bool {
	return ebiten.IsKeyPressed(ebitenKeys[key])
}

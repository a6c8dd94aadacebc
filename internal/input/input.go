// internal/input/input.go
package input

// Key is one of the fixed keys the game reacts to.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyReturn
	KeyEscape
)

// Keys lists every key the game cares about, in a stable order.
var Keys = []Key{KeyLeft, KeyRight, KeyUp, KeyDown, KeySpace, KeyReturn, KeyEscape}

// Source exposes the keyboard to scenes: discrete just-pressed edges
// for menu-style input and a continuous held query for movement.
type Source interface {
	JustPressed(key Key) bool
	IsHeld(key Key) bool
}

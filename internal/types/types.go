// internal/types/types.go
package types

// EntityID is a stable handle to an entity owned by a registry.
type EntityID uint64

// Rect is an axis-aligned rectangle with integer pixel coordinates.
// X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// MidTop returns the middle of the top edge.
func (r Rect) MidTop() (int, int) {
	return r.X + r.W/2, r.Y
}

// SetCenter moves the rectangle so its center lands on (cx, cy).
func (r *Rect) SetCenter(cx, cy int) {
	r.X = cx - r.W/2
	r.Y = cy - r.H/2
}

// Intersects reports whether the two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

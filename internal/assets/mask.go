// internal/assets/mask.go
package assets

import "image"

// opaqueThreshold mirrors the classic sprite-mask convention: a pixel
// belongs to the mask when its alpha exceeds half of the full range.
const opaqueThreshold = 127

// Mask is a per-pixel opacity bitmap derived from an image. Collision
// between two sprites is defined as an overlap of their opaque pixels
// at the current relative offset, which is stricter than a bounding-box
// test and ignores transparent padding.
type Mask struct {
	w, h int
	bits []bool
}

// MaskFromImage builds a mask from the alpha channel of img.
func MaskFromImage(img image.Image) *Mask {
	bounds := img.Bounds()
	m := &Mask{
		w:    bounds.Dx(),
		h:    bounds.Dy(),
		bits: make([]bool, bounds.Dx()*bounds.Dy()),
	}
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// RGBA returns 16-bit channels.
			m.bits[y*m.w+x] = a>>8 > opaqueThreshold
		}
	}
	return m
}

// MaskFromBits builds a mask from an explicit bitmap, row-major.
// Used by tests and by procedurally generated filler images.
func MaskFromBits(w, h int, bits []bool) *Mask {
	if len(bits) != w*h {
		panic("assets: mask bitmap size mismatch")
	}
	return &Mask{w: w, h: h, bits: bits}
}

// SolidMask returns a fully opaque w x h mask.
func SolidMask(w, h int) *Mask {
	bits := make([]bool, w*h)
	for i := range bits {
		bits[i] = true
	}
	return &Mask{w: w, h: h, bits: bits}
}

// Size returns the mask dimensions.
func (m *Mask) Size() (int, int) {
	return m.w, m.h
}

// Opaque reports whether the pixel at (x, y) is part of the mask.
// Out-of-bounds coordinates are transparent.
func (m *Mask) Opaque(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Overlap reports whether any opaque pixel of other, shifted by
// (dx, dy) relative to m's origin, coincides with an opaque pixel of m.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.w, other.w+dx)
	y1 := min(m.h, other.h+dy)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.bits[y*m.w+x] && other.bits[(y-dy)*other.w+(x-dx)] {
				return true
			}
		}
	}
	return false
}

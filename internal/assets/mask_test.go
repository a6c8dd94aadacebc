// internal/assets/mask_test.go
package assets

import (
	"image"
	"image/color"
	"testing"
)

func TestMaskFromImageAlphaThreshold(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.RGBA{255, 255, 255, 255}) // opaque
	img.Set(1, 0, color.RGBA{255, 255, 255, 127}) // at threshold, transparent
	img.Set(2, 0, color.RGBA{255, 255, 255, 128}) // just above, opaque

	m := MaskFromImage(img)
	if !m.Opaque(0, 0) {
		t.Errorf("fully opaque pixel not in mask")
	}
	if m.Opaque(1, 0) {
		t.Errorf("alpha 127 should be below the opacity threshold")
	}
	if !m.Opaque(2, 0) {
		t.Errorf("alpha 128 should be above the opacity threshold")
	}
}

func TestMaskOpaqueOutOfBounds(t *testing.T) {
	m := SolidMask(2, 2)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if m.Opaque(p[0], p[1]) {
			t.Errorf("out-of-bounds pixel (%d, %d) reported opaque", p[0], p[1])
		}
	}
}

// Two sprites whose bounding boxes overlap but whose opaque halves do
// not must not collide. This is the whole point of mask collision.
func TestMaskOverlapIgnoresTransparentPadding(t *testing.T) {
	// 4x2: left half opaque.
	left := MaskFromBits(4, 2, []bool{
		true, true, false, false,
		true, true, false, false,
	})
	// 4x2: right half opaque.
	right := MaskFromBits(4, 2, []bool{
		false, false, true, true,
		false, false, true, true,
	})

	// Perfect box overlap at zero offset: opaque regions are disjoint.
	if left.Overlap(right, 0, 0) {
		t.Errorf("disjoint opaque regions reported as overlapping")
	}
	// Shift right-mask left by 2: its opaque half lands on left's.
	if !left.Overlap(right, -2, 0) {
		t.Errorf("coinciding opaque regions not reported")
	}
	// Shift fully apart.
	if left.Overlap(right, 10, 0) {
		t.Errorf("separated masks reported as overlapping")
	}
}

func TestMaskOverlapOffsets(t *testing.T) {
	a := SolidMask(4, 4)
	b := SolidMask(4, 4)
	tests := []struct {
		dx, dy int
		want   bool
	}{
		{0, 0, true},
		{3, 3, true},
		{4, 0, false},
		{0, 4, false},
		{-3, 0, true},
		{-4, 0, false},
	}
	for _, tt := range tests {
		if got := a.Overlap(b, tt.dx, tt.dy); got != tt.want {
			t.Errorf("Overlap at offset (%d, %d) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestMaskFromBitsSizeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on bitmap size mismatch")
		}
	}()
	MaskFromBits(2, 2, []bool{true})
}

// internal/ui/energy_bar.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/types"
)

// EnergyBar is the shoot-energy indicator in the bottom-left corner: a
// fixed outer frame and an inner bar whose width tracks the remaining
// energy.
type EnergyBar struct {
	outer         types.Rect
	inner         types.Rect
	maxInnerWidth int
	maxEnergy     int
	innerColor    color.Color
}

// NewEnergyBar anchors the bar to the bottom-left of the viewport.
func NewEnergyBar(vp config.Viewport, maxEnergy int) *EnergyBar {
	outer := types.NewRect(
		config.EnergyBarMargin,
		vp.Height-config.EnergyBarMargin-config.EnergyBarHeight,
		config.EnergyBarWidth,
		config.EnergyBarHeight,
	)
	inner := types.NewRect(
		outer.X+config.EnergyBarInset,
		outer.Y+config.EnergyBarInset,
		outer.W-2*config.EnergyBarInset,
		outer.H-2*config.EnergyBarInset,
	)
	return &EnergyBar{
		outer:         outer,
		inner:         inner,
		maxInnerWidth: inner.W,
		maxEnergy:     maxEnergy,
		innerColor:    config.BarHighColor,
	}
}

// Update shrinks the inner bar to the current energy share and picks
// its color: green above 70%, yellow above 30%, red below.
func (b *EnergyBar) Update(energy int) {
	pct := float64(energy) / float64(b.maxEnergy)
	b.inner.W = int(float64(b.maxInnerWidth) * pct)
	switch {
	case pct > 0.7:
		b.innerColor = config.BarHighColor
	case pct > 0.3:
		b.innerColor = config.BarMidColor
	default:
		b.innerColor = config.BarLowColor
	}
}

// Draw renders the frame and the fill.
func (b *EnergyBar) Draw(screen *ebiten.Image) {
	drawRect(screen, b.outer, config.BarOuterColor)
	drawRect(screen, b.inner, b.innerColor)
}

func drawRect(screen *ebiten.Image, r types.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

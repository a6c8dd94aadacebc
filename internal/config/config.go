// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TPS          = 60

	// Divisors applied to the viewport width when scaling sprite images.
	PlayerScaleDiv     = 16
	EnemyScaleDiv      = 16
	ProjectileScaleDiv = 70
	ExplosionScaleDiv  = 8

	PlayerBottomOffset = 30 // distance from the bottom edge to the player center
	ExplosionLifetime  = 100 * time.Millisecond
	EnergyRegenPerTick = 1

	MenuItemCount  = 3
	MenuStartIndex = 1

	FinalEnemyVelocity = 10
	FinalSpawnInterval = 200 // ms, fixed cadence on the lose screen

	LabelPanelCount = 3
	LabelMargin     = 10

	EnergyBarWidth  = 100
	EnergyBarHeight = 20
	EnergyBarInset  = 3
	EnergyBarMargin = 10

	HeaderFontSize   = 72
	MenuFontSize     = 36
	LabelFontSize    = 24
	MenuItemSpacing  = 50
	MenuBlockSpacing = 60
)

var (
	BackgroundColor   = color.RGBA{0, 0, 0, 255}
	FillerColor       = color.RGBA{255, 165, 0, 255} // orange stand-in for missing images
	HeaderColor       = color.RGBA{255, 0, 0, 255}
	ActionColor       = color.RGBA{255, 255, 255, 255}
	MenuItemColor     = color.RGBA{255, 255, 255, 255}
	SelectedItemColor = color.RGBA{255, 255, 0, 255}
	LabelColor        = color.RGBA{255, 255, 255, 255}
	LoseTextColor     = color.RGBA{255, 0, 0, 255}
	BarOuterColor     = color.RGBA{128, 128, 128, 255}
	BarHighColor      = color.RGBA{0, 255, 0, 255}
	BarMidColor       = color.RGBA{255, 255, 0, 255}
	BarLowColor       = color.RGBA{255, 0, 0, 255}
)

// Viewport is the fixed logical screen size. It is passed explicitly to
// every component that needs it instead of being queried from a global
// display handle.
type Viewport struct {
	Width  int
	Height int
}

// DefaultViewport returns the 800x600 playfield the game runs at.
func DefaultViewport() Viewport {
	return Viewport{Width: ScreenWidth, Height: ScreenHeight}
}

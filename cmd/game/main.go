// cmd/game/main.go
package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/scene"
	"go-space-invaders/internal/utils"
)

// AppGame adapts the scene state machine to the fixed-rate ebiten loop:
// every tick polls input, updates the current scene and renders the
// background plus the scene contents.
type AppGame struct {
	sm *scene.StateMachine
	bg *assets.Image
}

func (a *AppGame) Update() error {
	a.sm.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	a.bg.Draw(screen, 0, 0)
	a.sm.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	vp := config.DefaultViewport()
	res := assets.Load(vp)

	ctx := &scene.Context{
		Res:      res,
		Viewport: vp,
		Input:    input.NewKeyboard(),
		Rng:      utils.NewPRNGService(0),
		Now:      time.Now,
	}

	sm := scene.NewStateMachine()
	sm.SetState(scene.NewMenuScene(sm, ctx))

	app := &AppGame{
		sm: sm,
		bg: res.Images["bg"],
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Space Invaders")
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

// internal/scene/final_scene.go
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/ui"
)

// FinalScene is the lose screen. It takes over the play session's
// registry: the player ship is removed, every remaining and future
// enemy is forced to a fast fixed velocity and the spawn timer runs at
// a fast constant cadence behind a centered banner.
type FinalScene struct {
	sm       *StateMachine
	ctx      *Context
	registry *entity.Registry
	text     *ui.Text
}

func NewFinalScene(sm *StateMachine, ctx *Context, registry *entity.Registry) *FinalScene {
	registry.RemovePlayer()
	registry.SetEnemyVelocity(config.FinalEnemyVelocity)
	registry.SetEnemySpawnTimer(config.FinalSpawnInterval)

	text := ui.NewText("You lose!", ctx.Res.FontFace(config.HeaderFontSize), config.LoseTextColor)
	text.Rect.SetCenter(ctx.Viewport.Width/2, ctx.Viewport.Height/2)

	return &FinalScene{
		sm:       sm,
		ctx:      ctx,
		registry: registry,
		text:     text,
	}
}

func (f *FinalScene) Enter() {}

func (f *FinalScene) Update() {
	for _, e := range f.registry.Queue().Drain() {
		// Breach signals keep arriving as enemies fall off-screen; the
		// lose screen has no lives left to damage, so only spawns matter.
		if e.Type == event.EnemySpawnDue {
			f.registry.CreateEnemy()
		}
	}

	if f.ctx.Input.JustPressed(input.KeySpace) || f.ctx.Input.JustPressed(input.KeyReturn) {
		f.sm.SetState(NewMenuScene(f.sm, f.ctx))
		return
	}

	f.registry.Update()
}

func (f *FinalScene) Draw(screen *ebiten.Image) {
	f.registry.Draw(screen)
	f.text.Draw(screen)
}

func (f *FinalScene) Exit() {}

// Registry exposes the adopted registry.
func (f *FinalScene) Registry() *entity.Registry {
	return f.registry
}

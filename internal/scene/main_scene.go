// internal/scene/main_scene.go
package scene

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/entity"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/ui"
)

var heldDirections = []struct {
	key input.Key
	dir entity.Direction
}{
	{input.KeyLeft, entity.DirLeft},
	{input.KeyRight, entity.DirRight},
	{input.KeyUp, entity.DirUp},
	{input.KeyDown, entity.DirDown},
}

// MainScene is the play state: it owns the entity registry, the score
// and lives bookkeeping, and the HUD. Signals raised during one tick
// (spawn due, breach, player dead) are buffered in the registry's event
// queue and consumed at the start of the next tick.
type MainScene struct {
	sm  *StateMachine
	ctx *Context

	params   defs.GameParameters
	registry *entity.Registry
	queue    *event.Queue
	player   *entity.Entity

	score      int
	lives      int
	lastShot   time.Time
	playerDead bool

	labels    *ui.LabelPanel
	energyBar *ui.EnergyBar
}

func NewMainScene(sm *StateMachine, ctx *Context, difficulty int) *MainScene {
	params := defs.PresetFor(difficulty)
	queue := event.NewQueue()
	registry := entity.NewRegistry(params, ctx.Viewport, ctx.Res, queue, ctx.Rng, ctx.Now)

	s := &MainScene{
		sm:       sm,
		ctx:      ctx,
		params:   params,
		registry: registry,
		queue:    queue,
		lives:    params.PlayerLives,
	}
	s.player = registry.CreatePlayer()
	s.labels = ui.NewLabelPanel(config.LabelPanelCount, ctx.Res.FontFace(config.LabelFontSize))
	s.energyBar = ui.NewEnergyBar(ctx.Viewport, s.player.MaxEnergy)

	ctx.Res.PlayLoop("ost")
	registry.SetEnemySpawnTimer(0)
	return s
}

func (s *MainScene) Enter() {}

func (s *MainScene) Update() {
	// Signals raised last tick come first, like a real event pump.
	for _, e := range s.queue.Drain() {
		switch e.Type {
		case event.EnemySpawnDue:
			s.registry.CreateEnemy()
		case event.EnemyBreach:
			s.handleEnemyBreach()
		case event.PlayerDead:
			s.sm.SetState(NewFinalScene(s.sm, s.ctx, s.registry))
			return
		}
	}

	if s.ctx.Input.JustPressed(input.KeyEscape) {
		s.sm.SetState(NewMenuScene(s.sm, s.ctx))
		return
	}

	s.handleHeldKeys()
	s.handleCollisions()
	s.registry.Update()

	s.energyBar.Update(s.player.Energy)
	s.labels.Update([]string{
		fmt.Sprintf("Lives: %d", s.lives),
		fmt.Sprintf("Score: %d", s.score),
		fmt.Sprintf("FPS: %d", int(ebiten.ActualFPS())),
	})
}

func (s *MainScene) Draw(screen *ebiten.Image) {
	s.registry.Draw(screen)
	s.labels.Draw(screen)
	s.energyBar.Draw(screen)
}

func (s *MainScene) Exit() {}

// shoot fires a projectile if both gates pass: the cooldown since the
// last shot has elapsed and the player has enough energy. A rejected
// shot changes nothing.
func (s *MainScene) shoot() {
	now := s.ctx.Now()
	cooldown := time.Duration(s.params.PlayerCooldown) * time.Millisecond
	if now.Sub(s.lastShot) < cooldown {
		return
	}
	if s.player.Energy < s.params.ShootCost {
		return
	}
	s.registry.CreateProjectile()
	s.lastShot = now
	s.player.Energy -= s.params.ShootCost
}

func (s *MainScene) handleHeldKeys() {
	for _, hd := range heldDirections {
		if s.ctx.Input.IsHeld(hd.key) {
			s.registry.MovePlayer(hd.dir)
		}
	}
	if s.ctx.Input.IsHeld(input.KeySpace) {
		s.shoot()
	}
}

func (s *MainScene) handleCollisions() {
	damage, score := s.registry.ResolvePlayerCollisions()
	score += s.registry.ResolveProjectileCollisions()

	s.score += score
	s.damagePlayer(damage)
}

func (s *MainScene) handleEnemyBreach() {
	s.damagePlayer(1)
	if s.lives > 0 {
		s.ctx.Res.PlaySound("warning")
	}
}

// damagePlayer applies damage to the lives counter. Dropping to zero
// spawns the player's explosion and raises the terminal signal, exactly
// once per session.
func (s *MainScene) damagePlayer(amount int) {
	s.lives -= amount
	if s.lives <= 0 && !s.playerDead {
		s.playerDead = true
		s.registry.CreateExplosion(s.player)
		s.queue.Post(event.Event{Type: event.PlayerDead})
	}
}

// Score returns the accumulated score.
func (s *MainScene) Score() int {
	return s.score
}

// Lives returns the remaining lives.
func (s *MainScene) Lives() int {
	return s.lives
}

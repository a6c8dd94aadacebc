// internal/scene/scene.go
package scene

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/utils"
)

// Scene is one state of the game (menu, play, lose screen). Exactly one
// scene is current at any time; a scene requests its successor by
// calling SetState on the machine during Update.
type Scene interface {
	Enter()
	Update()
	Draw(screen *ebiten.Image)
	Exit()
}

// Context bundles the services every scene needs: the resource
// catalogue, the fixed viewport, the input source, the seeded random
// generator and the wall clock. Tests swap in fakes for the last three.
type Context struct {
	Res      *assets.Manager
	Viewport config.Viewport
	Input    input.Source
	Rng      *utils.PRNGService
	Now      func() time.Time
}

// StateMachine drives the current scene.
type StateMachine struct {
	current Scene
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current scene and enters the new one.
func (sm *StateMachine) SetState(next Scene) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = next
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active scene.
func (sm *StateMachine) Current() Scene {
	return sm.current
}

// Update advances the current scene by one tick.
func (sm *StateMachine) Update() {
	if sm.current != nil {
		sm.current.Update()
	}
}

// Draw renders the current scene.
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

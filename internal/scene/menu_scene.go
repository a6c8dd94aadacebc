// internal/scene/menu_scene.go
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-space-invaders/internal/config"
	"go-space-invaders/internal/input"
	"go-space-invaders/internal/ui"
)

// menuKeys are the keys the menu reacts to; each press plays a beep.
var menuKeys = []input.Key{input.KeyLeft, input.KeyRight, input.KeySpace, input.KeyReturn}

// MenuScene shows the difficulty selector. Confirming starts a play
// session with the selected difficulty.
type MenuScene struct {
	sm   *StateMachine
	ctx  *Context
	menu *ui.Menu
}

func NewMenuScene(sm *StateMachine, ctx *Context) *MenuScene {
	return &MenuScene{
		sm:  sm,
		ctx: ctx,
		menu: ui.NewMenu(
			ctx.Viewport,
			config.MenuStartIndex,
			ctx.Res.FontFace(config.HeaderFontSize),
			ctx.Res.FontFace(config.MenuFontSize),
		),
	}
}

// Enter stops whatever is still playing from the previous scene.
func (m *MenuScene) Enter() {
	m.ctx.Res.StopAll()
}

func (m *MenuScene) Update() {
	for _, key := range menuKeys {
		if !m.ctx.Input.JustPressed(key) {
			continue
		}
		m.ctx.Res.PlaySound("beep")
		switch key {
		case input.KeyLeft:
			m.menu.Switch(-1)
		case input.KeyRight:
			m.menu.Switch(1)
		case input.KeySpace, input.KeyReturn:
			m.sm.SetState(NewMainScene(m.sm, m.ctx, m.menu.Index()))
			return
		}
	}
}

func (m *MenuScene) Draw(screen *ebiten.Image) {
	m.menu.Draw(screen)
}

func (m *MenuScene) Exit() {}

// Index returns the selected difficulty.
func (m *MenuScene) Index() int {
	return m.menu.Index()
}

// internal/ui/menu.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-space-invaders/internal/config"
)

// Menu is the three-item horizontal difficulty selector. Selection is
// clamped to [0, 2]; the selected item is recolored.
type Menu struct {
	index  int
	header *Text
	action *Text
	items  [config.MenuItemCount]*Text
}

// NewMenu lays the selector out for the given viewport with the start
// item selected.
func NewMenu(vp config.Viewport, startIndex int, headerFace, menuFace font.Face) *Menu {
	m := &Menu{index: startIndex}

	m.header = NewText("Space Invaders", headerFace, config.HeaderColor)
	m.action = NewText("Choose difficulty:", headerFace, config.ActionColor)
	m.items[0] = NewText("Easy", menuFace, config.MenuItemColor)
	m.items[1] = NewText("Normal", menuFace, config.MenuItemColor)
	m.items[2] = NewText("Hard", menuFace, config.MenuItemColor)

	m.header.Rect.SetCenter(vp.Width/2, vp.Height/3)
	m.action.Rect.X = vp.Width/2 - m.action.Rect.W/2
	m.action.Rect.Y = m.header.Rect.Bottom() + config.MenuBlockSpacing

	itemsTop := m.action.Rect.Bottom() + config.MenuBlockSpacing
	m.items[1].Rect.X = vp.Width/2 - m.items[1].Rect.W/2
	m.items[1].Rect.Y = itemsTop
	m.items[0].Rect.X = m.items[1].Rect.Left() - config.MenuItemSpacing - m.items[0].Rect.W
	m.items[0].Rect.Y = itemsTop
	m.items[2].Rect.X = m.items[1].Rect.Right() + config.MenuItemSpacing
	m.items[2].Rect.Y = itemsTop

	m.items[m.index].SetColor(config.SelectedItemColor)
	return m
}

// Switch moves the selection one step left (-1) or right (+1), clamped
// at the ends, and returns the resulting index.
func (m *Menu) Switch(direction int) int {
	next := m.index + direction
	if next < 0 || next >= config.MenuItemCount {
		return m.index
	}
	m.items[m.index].SetColor(config.MenuItemColor)
	m.index = next
	m.items[m.index].SetColor(config.SelectedItemColor)
	return m.index
}

// Index returns the selected item.
func (m *Menu) Index() int {
	return m.index
}

// Draw renders the header, prompt and all menu items.
func (m *Menu) Draw(screen *ebiten.Image) {
	m.header.Draw(screen)
	m.action.Draw(screen)
	for _, item := range m.items {
		item.Draw(screen)
	}
}

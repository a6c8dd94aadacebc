// internal/ui/label_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-space-invaders/internal/config"
)

// LabelPanel manages a fixed column of labels in the top-left corner.
type LabelPanel struct {
	labels []*Text
}

// NewLabelPanel creates count empty labels stacked below each other.
func NewLabelPanel(count int, face font.Face) *LabelPanel {
	p := &LabelPanel{}
	lineHeight := face.Metrics().Height.Ceil()
	for i := 0; i < count; i++ {
		label := NewText("", face, config.LabelColor)
		label.Rect.X = config.LabelMargin
		label.Rect.Y = config.LabelMargin + lineHeight*i
		p.labels = append(p.labels, label)
	}
	return p
}

// Update replaces the text of every label. The caller owns the label
// layout, so a count mismatch is a bug, not a recoverable condition.
func (p *LabelPanel) Update(texts []string) {
	if len(texts) != len(p.labels) {
		panic(fmt.Sprintf("ui: label count mismatch: expected %d, got %d", len(p.labels), len(texts)))
	}
	for i, label := range p.labels {
		label.SetMessage(texts[i])
	}
}

// Draw renders every label.
func (p *LabelPanel) Draw(screen *ebiten.Image) {
	for _, label := range p.labels {
		label.Draw(screen)
	}
}

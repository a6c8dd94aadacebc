// internal/assets/manager.go
package assets

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"

	"go-space-invaders/internal/config"
)

const (
	imageDir = "img"
	soundDir = "sounds"
	fontPath = "fonts/arial.ttf"
)

var soundNames = []string{"ost", "shot", "explosion", "warning", "beep", "no_energy"}

// Manager loads and caches every image and sound the game needs and
// hands out font faces. All resources are queried by fixed string keys.
// The zero value is usable: lookups miss, sound playback is a no-op and
// fonts fall back to a builtin face, which is what tests rely on.
type Manager struct {
	Images map[string]*Image

	sounds   map[string]*Sound
	audioCtx *audio.Context
	tt       *opentype.Font
	faces    map[float64]font.Face
	loop     *audio.Player
}

// Load builds the resource catalogue for the given viewport. Missing
// files degrade to fillers or silence with a logged notice; Load itself
// never fails.
func Load(vp config.Viewport) *Manager {
	m := &Manager{
		Images:   make(map[string]*Image),
		sounds:   make(map[string]*Sound),
		audioCtx: audio.NewContext(sampleRate),
	}
	m.loadImages(vp)
	m.loadSounds()
	m.loadFont()
	return m
}

func (m *Manager) loadImages(vp config.Viewport) {
	w := vp.Width
	// Background is stretched to the whole viewport, sprites keep their
	// aspect ratio at a width derived from the viewport.
	m.Images["bg"] = LoadImage(imageDir, "BG.jpg", w, vp.Height)
	m.Images["player"] = LoadImage(imageDir, "Ship1.png", w/config.PlayerScaleDiv, 0)
	m.Images["enemy"] = LoadImage(imageDir, "UFO.png", w/config.EnemyScaleDiv, 0)
	m.Images["projectile"] = LoadImage(imageDir, "Laser.png", w/config.ProjectileScaleDiv, 0)
	m.Images["explosion"] = LoadImage(imageDir, "Explosion.png", w/config.ExplosionScaleDiv, 0)
}

func (m *Manager) loadSounds() {
	for _, name := range soundNames {
		sound, err := loadSound(m.audioCtx, soundDir, name)
		if err != nil {
			log.Printf("assets: can not load sound %s: %v, skipping", name, err)
			continue
		}
		m.sounds[name] = sound
	}
}

func (m *Manager) loadFont() {
	data, err := os.ReadFile(fontPath)
	if err != nil {
		log.Printf("assets: can not read font %s: %v, using builtin face", fontPath, err)
		return
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		log.Printf("assets: can not parse font %s: %v, using builtin face", fontPath, err)
		return
	}
	m.tt = tt
}

// PlaySound plays a sound once. Unknown or unloaded names are skipped.
func (m *Manager) PlaySound(name string) {
	if sound, ok := m.sounds[name]; ok {
		sound.Play()
	}
}

// PlayLoop starts looping the named sound until StopAll is called.
// A previous loop is replaced.
func (m *Manager) PlayLoop(name string) {
	sound, ok := m.sounds[name]
	if !ok {
		return
	}
	m.StopAll()
	player, err := sound.newLoopPlayer()
	if err != nil {
		log.Printf("assets: can not loop sound %s: %v", name, err)
		return
	}
	m.loop = player
	player.Play()
}

// StopAll stops the background loop. One-shot effects are short enough
// to just run out.
func (m *Manager) StopAll() {
	if m.loop != nil {
		m.loop.Close()
		m.loop = nil
	}
}

// FontFace returns a face of the given size, cached per size. Falls
// back to the builtin bitmap face when no TTF could be loaded.
func (m *Manager) FontFace(size float64) font.Face {
	if m.tt == nil {
		return basicfont.Face7x13
	}
	if m.faces == nil {
		m.faces = make(map[float64]font.Face)
	}
	if face, ok := m.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(m.tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("assets: can not create %.0fpt face: %v, using builtin face", size, err)
		return basicfont.Face7x13
	}
	m.faces[size] = face
	return face
}

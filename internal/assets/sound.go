// internal/assets/sound.go
package assets

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

const sampleRate = 44100

// Sound is an immutable playable handle over a fully decoded sample.
type Sound struct {
	ctx  *audio.Context
	data []byte
}

func loadSound(ctx *audio.Context, dir, name string) (*Sound, error) {
	raw, err := os.ReadFile(filepath.Join(dir, name+".mp3"))
	if err != nil {
		return nil, err
	}
	stream, err := mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s.mp3: %w", name, err)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s.mp3 samples: %w", name, err)
	}
	return &Sound{ctx: ctx, data: data}, nil
}

// Play starts a fire-and-forget playback of the sample.
func (s *Sound) Play() {
	p := s.ctx.NewPlayerFromBytes(s.data)
	p.Play()
}

// newLoopPlayer returns a player that repeats the sample indefinitely.
func (s *Sound) newLoopPlayer() (*audio.Player, error) {
	stream := audio.NewInfiniteLoop(bytes.NewReader(s.data), int64(len(s.data)))
	return s.ctx.NewPlayer(stream)
}

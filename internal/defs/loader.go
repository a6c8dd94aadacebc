// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

type presetFile struct {
	Presets []GameParameters `yaml:"presets"`
}

// ParameterLibrary holds the loaded difficulty presets, indexed by
// difficulty (0 = easy, 1 = normal, 2 = hard).
var ParameterLibrary []GameParameters

func init() {
	lib, err := LoadParameters(presetsYAML)
	if err != nil {
		panic(fmt.Sprintf("defs: embedded presets are invalid: %v", err))
	}
	ParameterLibrary = lib
}

// LoadParameters parses a preset document and validates it.
func LoadParameters(data []byte) ([]GameParameters, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal difficulty presets: %w", err)
	}
	if len(file.Presets) != 3 {
		return nil, fmt.Errorf("expected 3 difficulty presets, got %d", len(file.Presets))
	}
	for i, p := range file.Presets {
		if p.SpawnTimerMin <= 0 || p.SpawnTimerMax < p.SpawnTimerMin {
			return nil, fmt.Errorf("preset %d: bad spawn timer range [%d, %d]", i, p.SpawnTimerMin, p.SpawnTimerMax)
		}
		if p.PlayerLives <= 0 {
			return nil, fmt.Errorf("preset %d: player lives must be positive", i)
		}
	}
	return file.Presets, nil
}

// PresetFor returns a copy of the parameter bundle for the given
// difficulty. Out-of-range difficulties clamp to the nearest preset.
func PresetFor(difficulty int) GameParameters {
	if difficulty < 0 {
		difficulty = 0
	}
	if difficulty >= len(ParameterLibrary) {
		difficulty = len(ParameterLibrary) - 1
	}
	return ParameterLibrary[difficulty]
}

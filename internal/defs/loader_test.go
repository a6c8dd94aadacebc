// internal/defs/loader_test.go
package defs

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestPresetValues(t *testing.T) {
	tests := []struct {
		difficulty    int
		lives         int
		energy        int
		enemyVelocity int
		shootCost     int
		spawnMin      int
		spawnMax      int
	}{
		{DifficultyEasy, 5, 600, 1, 30, 1500, 2000},
		{DifficultyNormal, 3, 550, 1, 35, 1300, 1800},
		{DifficultyHard, 1, 400, 2, 40, 1200, 1600},
	}
	for _, tt := range tests {
		p := PresetFor(tt.difficulty)
		if p.PlayerLives != tt.lives {
			t.Errorf("difficulty %d: lives = %d, want %d", tt.difficulty, p.PlayerLives, tt.lives)
		}
		if p.PlayerEnergy != tt.energy {
			t.Errorf("difficulty %d: energy = %d, want %d", tt.difficulty, p.PlayerEnergy, tt.energy)
		}
		if p.EnemyVelocity != tt.enemyVelocity {
			t.Errorf("difficulty %d: enemy velocity = %d, want %d", tt.difficulty, p.EnemyVelocity, tt.enemyVelocity)
		}
		if p.ShootCost != tt.shootCost {
			t.Errorf("difficulty %d: shoot cost = %d, want %d", tt.difficulty, p.ShootCost, tt.shootCost)
		}
		if p.SpawnTimerMin != tt.spawnMin || p.SpawnTimerMax != tt.spawnMax {
			t.Errorf("difficulty %d: spawn range = [%d, %d], want [%d, %d]",
				tt.difficulty, p.SpawnTimerMin, p.SpawnTimerMax, tt.spawnMin, tt.spawnMax)
		}
		if p.PlayerCooldown != 100 {
			t.Errorf("difficulty %d: cooldown = %d, want 100 for every preset", tt.difficulty, p.PlayerCooldown)
		}
		if p.PlayerVelocity != 5 || p.ProjectileVelocity != 5 {
			t.Errorf("difficulty %d: velocities = %d/%d, want 5/5", tt.difficulty, p.PlayerVelocity, p.ProjectileVelocity)
		}
	}
}

func TestPresetForClamps(t *testing.T) {
	if got := PresetFor(-1); got != ParameterLibrary[0] {
		t.Errorf("PresetFor(-1) should clamp to easy")
	}
	if got := PresetFor(99); got != ParameterLibrary[2] {
		t.Errorf("PresetFor(99) should clamp to hard")
	}
}

func TestPresetForReturnsCopy(t *testing.T) {
	p := PresetFor(DifficultyNormal)
	p.PlayerLives = 0
	p.EnemyVelocity = 99
	if ParameterLibrary[DifficultyNormal].PlayerLives != 3 {
		t.Errorf("mutating a preset copy leaked into the library")
	}
}

func TestParametersRoundTrip(t *testing.T) {
	for difficulty := 0; difficulty < 3; difficulty++ {
		original := PresetFor(difficulty)
		data, err := yaml.Marshal(original)
		if err != nil {
			t.Fatalf("difficulty %d: marshal: %v", difficulty, err)
		}
		var restored GameParameters
		if err := yaml.Unmarshal(data, &restored); err != nil {
			t.Fatalf("difficulty %d: unmarshal: %v", difficulty, err)
		}
		if restored != original {
			t.Errorf("difficulty %d: round trip changed values: %+v != %+v", difficulty, restored, original)
		}
	}
}

func TestLoadParametersRejectsBadData(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", ":\n :"},
		{"wrong count", "presets:\n  - player_lives: 1\n    spawn_timer_min: 1\n    spawn_timer_max: 2\n"},
		{"inverted spawn range", `
presets:
  - {player_lives: 1, spawn_timer_min: 500, spawn_timer_max: 100}
  - {player_lives: 1, spawn_timer_min: 500, spawn_timer_max: 600}
  - {player_lives: 1, spawn_timer_min: 500, spawn_timer_max: 600}
`},
		{"no lives", `
presets:
  - {player_lives: 0, spawn_timer_min: 100, spawn_timer_max: 200}
  - {player_lives: 1, spawn_timer_min: 100, spawn_timer_max: 200}
  - {player_lives: 1, spawn_timer_min: 100, spawn_timer_max: 200}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadParameters([]byte(tt.doc)); err == nil {
				t.Errorf("LoadParameters accepted %s", tt.name)
			}
		})
	}
}

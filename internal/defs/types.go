// internal/defs/types.go
package defs

// GameParameters is the per-difficulty parameter bundle. It is selected
// once when a play session starts and treated as immutable afterwards;
// the lose screen works on its own copy.
type GameParameters struct {
	PlayerLives        int `yaml:"player_lives"`
	PlayerVelocity     int `yaml:"player_velocity"`
	PlayerCooldown     int `yaml:"player_cooldown"` // ms between shots
	PlayerEnergy       int `yaml:"player_energy"`
	SpawnTimerMin      int `yaml:"spawn_timer_min"` // ms
	SpawnTimerMax      int `yaml:"spawn_timer_max"` // ms
	EnemyVelocity      int `yaml:"enemy_velocity"`
	ProjectileVelocity int `yaml:"projectile_velocity"`
	ShootCost          int `yaml:"shoot_cost"`
}

const (
	DifficultyEasy = iota
	DifficultyNormal
	DifficultyHard
)

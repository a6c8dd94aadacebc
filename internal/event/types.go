// internal/event/types.go
package event

const (
	EnemySpawnDue Type = "EnemySpawnDue" // recurring spawn timer fired
	EnemyBreach   Type = "EnemyBreach"   // enemy reached the bottom edge
	PlayerDead    Type = "PlayerDead"    // lives dropped to zero
)

// internal/entity/entity.go
package entity

import (
	"fmt"
	"time"

	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/types"
)

// Kind tags the entity variant. Per-kind behavior is selected by this
// tag instead of dynamic dispatch, so the pools stay homogeneous.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProjectile
	KindExplosion
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindExplosion:
		return "explosion"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Direction is a movement command for the player ship.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Entity is a positioned, imaged, collidable game object. The image is
// an immutable resource owned by the asset manager and only borrowed
// here. Kind-specific state lives in the tail fields; only the fields
// for the entity's own kind are meaningful.
type Entity struct {
	ID       types.EntityID
	Kind     Kind
	Rect     types.Rect
	Img      *assets.Image
	Velocity int

	// Player state.
	Energy    int
	MaxEnergy int

	// Explosion state.
	createdAt time.Time
}

// collides reports whether the opaque pixels of the two entities
// overlap at their current positions. A bounding-box miss short-circuits
// the mask scan.
func (e *Entity) collides(other *Entity) bool {
	if !e.Rect.Intersects(other.Rect) {
		return false
	}
	return e.Img.Mask.Overlap(other.Img.Mask, other.Rect.X-e.Rect.X, other.Rect.Y-e.Rect.Y)
}

// internal/entity/registry.go
package entity

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/types"
	"go-space-invaders/internal/utils"
)

// Registry owns every entity of a play session: it creates them,
// advances them one tick at a time, resolves collisions between its
// pools and removes whatever expires. Pools are slices of handles in
// insertion order, so iteration (and therefore collision consumption
// order) is deterministic.
type Registry struct {
	params defs.GameParameters
	vp     config.Viewport
	res    *assets.Manager
	queue  *event.Queue
	rng    *utils.PRNGService
	now    func() time.Time

	nextID      types.EntityID
	entities    map[types.EntityID]*Entity
	order       []types.EntityID // all sprites, draw/update order
	enemies     []types.EntityID
	projectiles []types.EntityID
	player      types.EntityID // 0 means no player

	spawnTimer   *event.Timer
	spawnFixedMs int // 0 draws a fresh jittered interval per re-arm
}

// NewRegistry creates an empty registry for one play session.
// now is the wall clock; tests inject a fake one.
func NewRegistry(params defs.GameParameters, vp config.Viewport, res *assets.Manager, queue *event.Queue, rng *utils.PRNGService, now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	r := &Registry{
		params:   params,
		vp:       vp,
		res:      res,
		queue:    queue,
		rng:      rng,
		now:      now,
		nextID:   1,
		entities: make(map[types.EntityID]*Entity),
	}
	r.spawnTimer = event.NewTimer(queue, event.EnemySpawnDue, r.spawnInterval)
	return r
}

// Queue returns the pending-event buffer the registry posts into.
func (r *Registry) Queue() *event.Queue {
	return r.queue
}

// Params returns the parameter bundle of this session.
func (r *Registry) Params() defs.GameParameters {
	return r.params
}

func (r *Registry) add(e *Entity) *Entity {
	e.ID = r.nextID
	r.nextID++
	r.entities[e.ID] = e
	r.order = append(r.order, e.ID)
	return e
}

// CreatePlayer places the player ship at the horizontal center, a fixed
// offset above the bottom edge. At most one player exists; a second
// call replaces the first.
func (r *Registry) CreatePlayer() *Entity {
	if r.player != 0 {
		r.remove(r.player)
	}
	img := r.res.Images["player"]
	rect := img.Rect()
	rect.SetCenter(r.vp.Width/2, r.vp.Height-config.PlayerBottomOffset)
	player := r.add(&Entity{
		Kind:      KindPlayer,
		Rect:      rect,
		Img:       img,
		Velocity:  r.params.PlayerVelocity,
		Energy:    r.params.PlayerEnergy,
		MaxEnergy: r.params.PlayerEnergy,
	})
	r.player = player.ID
	return player
}

// CreateEnemy spawns an enemy at a uniformly random horizontal position
// on the top edge, clamped so its bounds stay inside the viewport.
func (r *Registry) CreateEnemy() *Entity {
	img := r.res.Images["enemy"]
	rect := img.Rect()
	rect.SetCenter(r.rng.IntRange(0, r.vp.Width), 0)
	if rect.Left() < 0 {
		rect.X = 0
	}
	if rect.Right() > r.vp.Width {
		rect.X = r.vp.Width - rect.W
	}
	enemy := r.add(&Entity{
		Kind:     KindEnemy,
		Rect:     rect,
		Img:      img,
		Velocity: r.params.EnemyVelocity,
	})
	r.enemies = append(r.enemies, enemy.ID)
	return enemy
}

// CreateProjectile fires a projectile from the player's top center and
// plays the shot sound. Without a player it is a no-op.
func (r *Registry) CreateProjectile() *Entity {
	player, ok := r.entities[r.player]
	if !ok {
		return nil
	}
	img := r.res.Images["projectile"]
	rect := img.Rect()
	rect.SetCenter(player.Rect.MidTop())
	projectile := r.add(&Entity{
		Kind:     KindProjectile,
		Rect:     rect,
		Img:      img,
		Velocity: r.params.ProjectileVelocity,
	})
	r.projectiles = append(r.projectiles, projectile.ID)
	r.res.PlaySound("shot")
	return projectile
}

// CreateExplosion spawns a short-lived visual centered on the given
// entity and plays the explosion sound. Explosions join only the draw
// pool; nothing collides with them.
func (r *Registry) CreateExplosion(at *Entity) *Entity {
	img := r.res.Images["explosion"]
	rect := img.Rect()
	cx, cy := at.Rect.Center()
	rect.SetCenter(cx, cy)
	explosion := r.add(&Entity{
		Kind:      KindExplosion,
		Rect:      rect,
		Img:       img,
		createdAt: r.now(),
	})
	r.res.PlaySound("explosion")
	return explosion
}

// Player returns the live player entity, or nil.
func (r *Registry) Player() *Entity {
	if e, ok := r.entities[r.player]; ok {
		return e
	}
	return nil
}

// Enemies returns the live enemies in spawn order.
func (r *Registry) Enemies() []*Entity {
	out := make([]*Entity, 0, len(r.enemies))
	for _, id := range r.enemies {
		out = append(out, r.entities[id])
	}
	return out
}

// Projectiles returns the live projectiles in firing order.
func (r *Registry) Projectiles() []*Entity {
	out := make([]*Entity, 0, len(r.projectiles))
	for _, id := range r.projectiles {
		out = append(out, r.entities[id])
	}
	return out
}

// Len returns the number of live entities across all pools.
func (r *Registry) Len() int {
	return len(r.entities)
}

// RemovePlayer drops the player from every pool (used by the lose
// screen, which keeps the rest of the sprites flying).
func (r *Registry) RemovePlayer() {
	if r.player != 0 {
		r.remove(r.player)
	}
}

// SetEnemyVelocity overrides the velocity of all existing and future
// enemies.
func (r *Registry) SetEnemyVelocity(v int) {
	r.params.EnemyVelocity = v
	for _, id := range r.enemies {
		r.entities[id].Velocity = v
	}
}

// MovePlayer moves the player one velocity step in the given direction,
// unless the step would take its bounds past the viewport edge. Unknown
// directions are a caller bug.
func (r *Registry) MovePlayer(dir Direction) {
	player, ok := r.entities[r.player]
	if !ok {
		return
	}
	v := player.Velocity
	switch dir {
	case DirUp:
		if player.Rect.Top() > v {
			player.Rect.Y -= v
		}
	case DirDown:
		if player.Rect.Bottom() < r.vp.Height-v {
			player.Rect.Y += v
		}
	case DirLeft:
		if player.Rect.Left() > v {
			player.Rect.X -= v
		}
	case DirRight:
		if player.Rect.Right() < r.vp.Width-v {
			player.Rect.X += v
		}
	default:
		panic(fmt.Sprintf("entity: invalid direction %d", int(dir)))
	}
}

// Update advances every live entity by one tick using its kind rule and
// removes the ones whose rule expired.
func (r *Registry) Update() {
	now := r.now()
	snapshot := make([]types.EntityID, len(r.order))
	copy(snapshot, r.order)
	for _, id := range snapshot {
		e, ok := r.entities[id]
		if !ok {
			continue
		}
		switch e.Kind {
		case KindPlayer:
			e.Energy = min(e.MaxEnergy, e.Energy+config.EnergyRegenPerTick)
		case KindEnemy:
			if e.Rect.Bottom() < r.vp.Height {
				e.Rect.Y += e.Velocity
			} else {
				r.remove(id)
				r.queue.Post(event.Event{Type: event.EnemyBreach})
			}
		case KindProjectile:
			if e.Rect.Y > e.Velocity {
				e.Rect.Y -= e.Velocity
			} else {
				r.remove(id)
			}
		case KindExplosion:
			if now.Sub(e.createdAt) > config.ExplosionLifetime {
				r.remove(id)
			}
		}
	}
	r.spawnTimer.Tick(now)
}

// ResolvePlayerCollisions destroys every enemy whose mask overlaps the
// player's, spawning explosions for the player and each enemy hit. It
// returns the damage to apply to the player and the score delta, both
// equal to the number of enemies destroyed. Lives bookkeeping stays
// with the scene; the player entity itself is not destroyed here.
func (r *Registry) ResolvePlayerCollisions() (damage, score int) {
	player, ok := r.entities[r.player]
	if !ok {
		return 0, 0
	}
	var hit []types.EntityID
	for _, id := range r.enemies {
		if player.collides(r.entities[id]) {
			hit = append(hit, id)
		}
	}
	if len(hit) == 0 {
		return 0, 0
	}
	r.CreateExplosion(player)
	for _, id := range hit {
		r.CreateExplosion(r.entities[id])
		r.remove(id)
	}
	return len(hit), len(hit)
}

// ResolveProjectileCollisions destroys each projectile together with
// the first enemy (in spawn order) whose mask it overlaps. A projectile
// is consumed by its first match and never scores twice in one pass.
// Returns the score delta, one per destroyed enemy.
func (r *Registry) ResolveProjectileCollisions() (score int) {
	snapshot := make([]types.EntityID, len(r.projectiles))
	copy(snapshot, r.projectiles)
	for _, pid := range snapshot {
		projectile, ok := r.entities[pid]
		if !ok {
			continue
		}
		for _, eid := range r.enemies {
			enemy := r.entities[eid]
			if !projectile.collides(enemy) {
				continue
			}
			r.CreateExplosion(enemy)
			r.remove(eid)
			r.remove(pid)
			score++
			break
		}
	}
	return score
}

// SetEnemySpawnTimer arms the recurring spawn timer. A zero interval
// re-draws a fresh uniform interval from the preset's range on every
// re-arm (jittered spacing); a positive interval is fixed.
func (r *Registry) SetEnemySpawnTimer(ms int) {
	r.spawnFixedMs = ms
	r.spawnTimer.Arm(r.now())
}

func (r *Registry) spawnInterval() int {
	if r.spawnFixedMs > 0 {
		return r.spawnFixedMs
	}
	return r.rng.IntRange(r.params.SpawnTimerMin, r.params.SpawnTimerMax)
}

// Draw blits every live sprite in insertion order.
func (r *Registry) Draw(screen *ebiten.Image) {
	for _, id := range r.order {
		e := r.entities[id]
		e.Img.Draw(screen, e.Rect.X, e.Rect.Y)
	}
}

func (r *Registry) remove(id types.EntityID) {
	if _, ok := r.entities[id]; !ok {
		return
	}
	delete(r.entities, id)
	r.order = removeID(r.order, id)
	r.enemies = removeID(r.enemies, id)
	r.projectiles = removeID(r.projectiles, id)
	if r.player == id {
		r.player = 0
	}
}

func removeID(ids []types.EntityID, id types.EntityID) []types.EntityID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

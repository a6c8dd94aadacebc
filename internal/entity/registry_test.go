// internal/entity/registry_test.go
package entity

import (
	"testing"
	"time"

	"go-space-invaders/internal/assets"
	"go-space-invaders/internal/config"
	"go-space-invaders/internal/defs"
	"go-space-invaders/internal/event"
	"go-space-invaders/internal/utils"
)

// fakeClock is an adjustable wall clock for cooldown and lifetime rules.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(0, 0)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func testManager() *assets.Manager {
	return &assets.Manager{Images: map[string]*assets.Image{
		"player":     assets.NewOpaqueImage(20, 20),
		"enemy":      assets.NewOpaqueImage(20, 20),
		"projectile": assets.NewOpaqueImage(4, 10),
		"explosion":  assets.NewOpaqueImage(30, 30),
	}}
}

func testRegistry(t *testing.T) (*Registry, *event.Queue, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	queue := event.NewQueue()
	r := NewRegistry(
		defs.PresetFor(defs.DifficultyEasy),
		config.DefaultViewport(),
		testManager(),
		queue,
		utils.NewPRNGService(1),
		clock.now,
	)
	return r, queue, clock
}

func TestCreatePlayerPlacement(t *testing.T) {
	r, _, _ := testRegistry(t)
	player := r.CreatePlayer()
	cx, cy := player.Rect.Center()
	if cx != config.ScreenWidth/2 {
		t.Errorf("player center x = %d, want %d", cx, config.ScreenWidth/2)
	}
	if cy != config.ScreenHeight-config.PlayerBottomOffset {
		t.Errorf("player center y = %d, want %d", cy, config.ScreenHeight-config.PlayerBottomOffset)
	}
	if r.Player() != player {
		t.Errorf("player slot not filled")
	}
}

func TestCreatePlayerReplacesExisting(t *testing.T) {
	r, _, _ := testRegistry(t)
	first := r.CreatePlayer()
	second := r.CreatePlayer()
	if r.Player() != second {
		t.Errorf("second player did not take the slot")
	}
	if r.Len() != 1 {
		t.Errorf("first player %d not removed, %d entities live", first.ID, r.Len())
	}
}

func TestCreateEnemyStaysInsideViewport(t *testing.T) {
	r, _, _ := testRegistry(t)
	for i := 0; i < 500; i++ {
		enemy := r.CreateEnemy()
		if enemy.Rect.Left() < 0 || enemy.Rect.Right() > config.ScreenWidth {
			t.Fatalf("enemy bounds [%d, %d] leave the viewport", enemy.Rect.Left(), enemy.Rect.Right())
		}
	}
}

func TestCreateProjectileWithoutPlayerIsNoop(t *testing.T) {
	r, _, _ := testRegistry(t)
	if p := r.CreateProjectile(); p != nil {
		t.Errorf("projectile created without a player")
	}
	if r.Len() != 0 {
		t.Errorf("no-op creation left %d entities", r.Len())
	}
}

func TestCreateProjectileSpawnsAtPlayerTopCenter(t *testing.T) {
	r, _, _ := testRegistry(t)
	player := r.CreatePlayer()
	projectile := r.CreateProjectile()
	wantX, wantY := player.Rect.MidTop()
	cx, cy := projectile.Rect.Center()
	if cx != wantX || cy != wantY {
		t.Errorf("projectile center = (%d, %d), want player midtop (%d, %d)", cx, cy, wantX, wantY)
	}
}

func TestPlayerEnergyRegen(t *testing.T) {
	r, _, _ := testRegistry(t)
	player := r.CreatePlayer()
	player.Energy = player.MaxEnergy - 3

	r.Update()
	if player.Energy != player.MaxEnergy-2 {
		t.Errorf("energy = %d after one tick, want +1", player.Energy)
	}
	for i := 0; i < 10; i++ {
		r.Update()
	}
	if player.Energy != player.MaxEnergy {
		t.Errorf("energy = %d, want cap at max %d", player.Energy, player.MaxEnergy)
	}
}

func TestMovePlayerClampedToViewport(t *testing.T) {
	r, _, _ := testRegistry(t)
	dirs := []Direction{DirLeft, DirRight, DirUp, DirDown}
	for _, dir := range dirs {
		player := r.CreatePlayer()
		for i := 0; i < 1000; i++ {
			r.MovePlayer(dir)
		}
		rect := player.Rect
		if rect.Left() < 0 || rect.Right() > config.ScreenWidth ||
			rect.Top() < 0 || rect.Bottom() > config.ScreenHeight {
			t.Errorf("direction %d: player escaped to %+v", dir, rect)
		}
	}
}

func TestMovePlayerInvalidDirectionPanics(t *testing.T) {
	r, _, _ := testRegistry(t)
	r.CreatePlayer()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on invalid direction")
		}
	}()
	r.MovePlayer(Direction(42))
}

func TestEnemyBreachExactlyOnce(t *testing.T) {
	r, queue, _ := testRegistry(t)
	enemy := r.CreateEnemy()
	enemy.Rect.Y = config.ScreenHeight - enemy.Rect.H // bottom at the edge

	r.Update()
	if r.Len() != 0 {
		t.Fatalf("breached enemy not removed")
	}
	breaches := 0
	for _, e := range queue.Drain() {
		if e.Type == event.EnemyBreach {
			breaches++
		}
	}
	if breaches != 1 {
		t.Errorf("breach signaled %d times, want exactly 1", breaches)
	}

	// Further updates must not re-signal.
	r.Update()
	if queue.Len() != 0 {
		t.Errorf("events raised after the enemy was removed")
	}
}

func TestEnemyMovesDown(t *testing.T) {
	r, _, _ := testRegistry(t)
	enemy := r.CreateEnemy()
	y := enemy.Rect.Y
	r.Update()
	if enemy.Rect.Y != y+enemy.Velocity {
		t.Errorf("enemy moved %d, want velocity %d", enemy.Rect.Y-y, enemy.Velocity)
	}
}

func TestProjectileRemovedSilentlyAtTop(t *testing.T) {
	r, queue, _ := testRegistry(t)
	r.CreatePlayer()
	projectile := r.CreateProjectile()
	projectile.Rect.Y = projectile.Velocity // at the removal boundary

	r.Update()
	if len(r.Projectiles()) != 0 {
		t.Fatalf("projectile not removed at the top edge")
	}
	if queue.Len() != 0 {
		t.Errorf("projectile removal raised %d events, want none", queue.Len())
	}
}

func TestExplosionExpiresAfterLifetime(t *testing.T) {
	r, _, clock := testRegistry(t)
	player := r.CreatePlayer()
	r.CreateExplosion(player)
	if r.Len() != 2 {
		t.Fatalf("explosion not created")
	}

	clock.advance(config.ExplosionLifetime)
	r.Update()
	if r.Len() != 2 {
		t.Errorf("explosion expired at its lifetime boundary, want strictly after")
	}

	clock.advance(time.Millisecond)
	r.Update()
	if r.Len() != 1 {
		t.Errorf("explosion still alive past its lifetime")
	}
}

func TestPlayerCollisionsDestroyAllOverlappingEnemies(t *testing.T) {
	r, _, _ := testRegistry(t)
	player := r.CreatePlayer()
	for i := 0; i < 2; i++ {
		enemy := r.CreateEnemy()
		enemy.Rect.SetCenter(player.Rect.Center())
	}
	far := r.CreateEnemy()
	far.Rect.SetCenter(0, 0)

	damage, score := r.ResolvePlayerCollisions()
	if damage != 2 || score != 2 {
		t.Errorf("damage, score = %d, %d, want 2, 2", damage, score)
	}
	if len(r.Enemies()) != 1 {
		t.Errorf("%d enemies left, want only the far one", len(r.Enemies()))
	}
	if r.Player() == nil {
		t.Errorf("player destroyed by collision resolution; lives are the scene's business")
	}
	// One explosion for the player, one per destroyed enemy.
	explosions := r.Len() - 1 /*player*/ - 1 /*far enemy*/
	if explosions != 3 {
		t.Errorf("%d explosions spawned, want 3", explosions)
	}
}

func TestPlayerCollisionsRequireMaskOverlap(t *testing.T) {
	r, _, _ := testRegistry(t)
	// Player opaque only on the left half, enemy only on the right half.
	r.res.Images["player"] = &assets.Image{W: 8, H: 4, Mask: assets.MaskFromBits(8, 4, halfMask(8, 4, true))}
	r.res.Images["enemy"] = &assets.Image{W: 8, H: 4, Mask: assets.MaskFromBits(8, 4, halfMask(8, 4, false))}

	player := r.CreatePlayer()
	enemy := r.CreateEnemy()
	enemy.Rect = player.Rect // identical bounding boxes

	if damage, score := r.ResolvePlayerCollisions(); damage != 0 || score != 0 {
		t.Errorf("box overlap with disjoint masks counted as a hit (damage %d, score %d)", damage, score)
	}

	// Slide the enemy so the opaque halves meet.
	enemy.Rect.X -= 4
	if damage, _ := r.ResolvePlayerCollisions(); damage != 1 {
		t.Errorf("mask overlap not detected after shift")
	}
}

func halfMask(w, h int, left bool) []bool {
	bits := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (left && x < w/2) || (!left && x >= w/2) {
				bits[y*w+x] = true
			}
		}
	}
	return bits
}

func TestProjectileConsumedByFirstMatch(t *testing.T) {
	r, _, _ := testRegistry(t)
	r.CreatePlayer()
	projectile := r.CreateProjectile()

	first := r.CreateEnemy()
	second := r.CreateEnemy()
	first.Rect.SetCenter(projectile.Rect.Center())
	second.Rect.SetCenter(projectile.Rect.Center())

	score := r.ResolveProjectileCollisions()
	if score != 1 {
		t.Errorf("score = %d, want 1: a projectile is consumed by its first match", score)
	}
	if len(r.Projectiles()) != 0 {
		t.Errorf("consumed projectile still live")
	}
	enemies := r.Enemies()
	if len(enemies) != 1 {
		t.Fatalf("%d enemies left, want 1", len(enemies))
	}
	if enemies[0] != second {
		t.Errorf("consumption order is not pool insertion order")
	}
}

func TestProjectileCollisionsMultiplePairs(t *testing.T) {
	r, _, _ := testRegistry(t)
	r.CreatePlayer()
	for i := 0; i < 2; i++ {
		projectile := r.CreateProjectile()
		enemy := r.CreateEnemy()
		enemy.Rect.SetCenter(projectile.Rect.Center())
		projectile.Rect.Y = 100 + 50*i
		enemy.Rect.Y = 100 + 50*i
	}

	if score := r.ResolveProjectileCollisions(); score != 2 {
		t.Errorf("score = %d, want 2", score)
	}
	if len(r.Enemies()) != 0 || len(r.Projectiles()) != 0 {
		t.Errorf("pairs not fully destroyed: %d enemies, %d projectiles",
			len(r.Enemies()), len(r.Projectiles()))
	}
}

func TestSpawnIntervalJitterWithinClosedRange(t *testing.T) {
	clock := newFakeClock()
	queue := event.NewQueue()
	params := defs.PresetFor(defs.DifficultyHard) // range [1200, 1600]
	r := NewRegistry(params, config.DefaultViewport(), testManager(), queue, utils.NewPRNGService(7), clock.now)

	r.SetEnemySpawnTimer(0)
	for i := 0; i < 500; i++ {
		interval := r.spawnInterval()
		if interval < params.SpawnTimerMin || interval > params.SpawnTimerMax {
			t.Fatalf("jittered interval %d outside [%d, %d]", interval, params.SpawnTimerMin, params.SpawnTimerMax)
		}
	}
}

func TestSpawnIntervalFixed(t *testing.T) {
	r, _, _ := testRegistry(t)
	r.SetEnemySpawnTimer(config.FinalSpawnInterval)
	for i := 0; i < 10; i++ {
		if got := r.spawnInterval(); got != config.FinalSpawnInterval {
			t.Fatalf("fixed interval = %d, want %d", got, config.FinalSpawnInterval)
		}
	}
}

func TestSpawnTimerPostsRecurringEvents(t *testing.T) {
	r, queue, clock := testRegistry(t)
	r.SetEnemySpawnTimer(200)

	clock.advance(199 * time.Millisecond)
	r.Update()
	if queue.Len() != 0 {
		t.Fatalf("spawn event before the interval elapsed")
	}

	clock.advance(time.Millisecond)
	r.Update()
	events := queue.Drain()
	if len(events) != 1 || events[0].Type != event.EnemySpawnDue {
		t.Fatalf("expected one EnemySpawnDue, got %v", events)
	}

	clock.advance(200 * time.Millisecond)
	r.Update()
	if queue.Len() != 1 {
		t.Errorf("spawn timer did not recur")
	}
}

func TestSetEnemyVelocityAffectsExistingAndFuture(t *testing.T) {
	r, _, _ := testRegistry(t)
	existing := r.CreateEnemy()
	r.SetEnemyVelocity(config.FinalEnemyVelocity)
	future := r.CreateEnemy()
	if existing.Velocity != config.FinalEnemyVelocity {
		t.Errorf("existing enemy velocity = %d, want %d", existing.Velocity, config.FinalEnemyVelocity)
	}
	if future.Velocity != config.FinalEnemyVelocity {
		t.Errorf("future enemy velocity = %d, want %d", future.Velocity, config.FinalEnemyVelocity)
	}
}

func TestRemovePlayer(t *testing.T) {
	r, _, _ := testRegistry(t)
	r.CreatePlayer()
	r.RemovePlayer()
	if r.Player() != nil || r.Len() != 0 {
		t.Errorf("player still present after removal")
	}
	// Idempotent.
	r.RemovePlayer()
}

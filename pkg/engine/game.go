// pkg/engine/game.go
package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/opd-ai/go-spacewars/pkg/config"
	"github.com/opd-ai/go-spacewars/pkg/entity"
	"github.com/opd-ai/go-spacewars/pkg/event"
	"github.com/opd-ai/go-spacewars/pkg/physics"
	"github.com/opd-ai/go-spacewars/pkg/resource"
)

type GameStatus int

const (
	GameStatusWaiting GameStatus = iota
	GameStatusActive
	GameStatusEnded
)

// EffectSink receives fire-and-forget explosion notifications. The
// simulation never blocks on the sink; implementations that need to do
// real work must hand it off themselves.
type EffectSink interface {
	Trigger(position physics.Vector2D, color event.Color)
}

// Game owns the complete simulation state and advances it one tick at
// a time. All craft and bullet data is owned exclusively by the ticking
// goroutine for the duration of a tick; the lock only serializes
// external queries (GetGameState, SetCraftInput) against it.
type Game struct {
	Config      *config.GameConfig
	Crafts      map[entity.ID]*entity.Craft
	Bullets     map[entity.ID]*entity.Bullet
	Body        physics.CentralBody
	Gravity     *physics.GravityField
	Launcher    *entity.Launcher
	EntityLock  sync.RWMutex
	Running     bool
	CurrentTick uint64
	LastUpdate  time.Time
	EventBus    *event.Bus
	Status      GameStatus
	WinnerID    entity.ID // surviving craft when the round ends, zero on mutual destruction

	effects EffectSink
	strict  bool

	// Resource management
	ResourceManager *resource.ResourceManager
}

// NewGame creates a game with the specified configuration
func NewGame(cfg *config.GameConfig) *Game {
	body := physics.CentralBody{
		Position:        physics.Vector2D{},
		GravityConstant: cfg.Sun.GravityConstant,
		CollisionRadius: cfg.Sun.CollisionMargin,
	}

	game := &Game{
		Config:     cfg,
		Crafts:     make(map[entity.ID]*entity.Craft),
		Bullets:    make(map[entity.ID]*entity.Bullet),
		Body:       body,
		Gravity:    physics.NewGravityField(body, cfg.Sun.InfluenceCutoff),
		Launcher:   entity.NewLauncher(cfg.Bullet.LauncherConfig()),
		EventBus:   event.NewEventBus(),
		LastUpdate: time.Now(),
	}

	game.initCrafts()
	return game
}

// initCrafts spawns one craft per configured slot
func (g *Game) initCrafts() {
	stats := g.Config.Craft.Stats()
	for _, craftConfig := range g.Config.Crafts {
		craft := entity.NewCraft(
			entity.GenerateID(),
			craftConfig.Name,
			physics.Vector2D{X: craftConfig.X, Y: craftConfig.Y},
			craftConfig.Rotation(),
			stats,
		)
		craft.Color = craftConfig.Color
		g.Crafts[craft.ID] = craft

		g.EventBus.Publish(event.NewCraftEvent(
			event.CraftCreated, g, uint64(craft.ID), craft.Position,
		))
	}
}

// InitializeResourceManager initializes the resource manager with
// environment configuration. Called separately from NewGame so tests
// can run without the monitoring goroutine.
func (g *Game) InitializeResourceManager() error {
	envConfig, err := config.LoadConfigFromEnv()
	if err != nil {
		envConfig = config.DefaultEnvironmentConfig()
	}
	g.ResourceManager = resource.NewResourceManager(envConfig)
	return g.ResourceManager.Start()
}

// SetEffectSink installs the external visual-effects collaborator
func (g *Game) SetEffectSink(sink EffectSink) {
	g.effects = sink
}

// SetStrictInvariants enables panics on post-integration invariant
// violations. Tests turn this on; release builds rely on the
// documented clamps alone.
func (g *Game) SetStrictInvariants(on bool) {
	g.strict = on
}

// Start begins the round
func (g *Game) Start() {
	g.Running = true
	g.Status = GameStatusActive
	g.LastUpdate = time.Now()
	g.EventBus.Publish(event.NewRoundEvent(event.RoundStarted, g, 0))
}

// Stop halts the game update loop
func (g *Game) Stop() {
	g.Running = false
}

// SetCraftInput latches the control state a craft will use on its next
// tick. Unknown IDs are an error so callers notice stale bindings.
func (g *Game) SetCraftInput(id entity.ID, input entity.ControlState) error {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	craft, ok := g.Crafts[id]
	if !ok {
		return fmt.Errorf("craft %d not found", id)
	}
	craft.SetInput(input)
	return nil
}

// Update advances the game by wall-clock elapsed time
func (g *Game) Update() {
	g.Step(g.calculateDeltaTime())
}

// calculateDeltaTime returns the time since the last update, capped so
// a stalled frame cannot teleport entities through the arena.
func (g *Game) calculateDeltaTime() float64 {
	now := time.Now()
	deltaTime := now.Sub(g.LastUpdate).Seconds()
	g.LastUpdate = now

	if deltaTime > 0.1 {
		deltaTime = 0.1
	}
	return deltaTime
}

// Step advances the simulation by exactly deltaTime seconds. The frame
// order is fixed: steer craft, apply gravity and move, advance and
// spawn bullets, detect collisions, resolve them, clean up. Every step
// completes before the next begins; nothing carries across frames.
func (g *Game) Step(deltaTime float64) {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	g.steerCrafts(deltaTime)
	g.moveCrafts(deltaTime)
	g.updateBullets(deltaTime)

	events := DetectCollisions(g.craftList(), g.bulletList(), g.Body)
	g.resolveCollisions(events)

	g.cleanupInactiveEntities()
	g.checkRoundEnd()
	g.CurrentTick++
}

// steerCrafts integrates thrust, spin and heading for every live craft
func (g *Game) steerCrafts(deltaTime float64) {
	for _, craft := range g.Crafts {
		if craft.Active {
			craft.Steer(deltaTime)
		}
	}
}

// moveCrafts applies the gravity field on top of the heading-derived
// velocity, re-clamps to the speed limit and integrates position.
func (g *Game) moveCrafts(deltaTime float64) {
	for _, craft := range g.Crafts {
		if !craft.Active {
			continue
		}

		accel := g.Gravity.Acceleration(craft.Position)
		craft.Velocity = craft.Velocity.Add(accel.Scale(deltaTime)).
			ClampLength(craft.Stats.MaxSpeed)

		craft.BaseEntity.Update(deltaTime)

		if g.strict {
			g.assertCraftInvariants(craft)
		}
	}
}

// assertCraftInvariants fails loudly on states the clamps should have
// made impossible.
func (g *Game) assertCraftInvariants(craft *entity.Craft) {
	const epsilon = 1e-6
	if craft.Velocity.Length() > craft.Stats.MaxSpeed+epsilon {
		panic(fmt.Sprintf("craft %d velocity %f exceeds max speed %f",
			craft.ID, craft.Velocity.Length(), craft.Stats.MaxSpeed))
	}
	if !craft.Velocity.IsFinite() || !craft.Position.IsFinite() {
		panic(fmt.Sprintf("craft %d has non-finite state: pos=%v vel=%v",
			craft.ID, craft.Position, craft.Velocity))
	}
}

// updateBullets advances cooldowns, spawns bullets on fire edges and
// moves live bullets toward expiry.
func (g *Game) updateBullets(deltaTime float64) {
	g.Launcher.Tick(deltaTime)

	for _, craft := range g.Crafts {
		if !craft.Active {
			continue
		}
		if bullet := g.Launcher.TryFire(craft, craft.Input.Fire); bullet != nil {
			g.Bullets[bullet.ID] = bullet
			g.EventBus.Publish(&event.BaseEvent{
				EventType: event.BulletFired,
				Source:    bullet,
			})
		}
	}

	for _, bullet := range g.Bullets {
		bullet.Update(deltaTime)
	}
}

// resolveCollisions despawns the losing entities and emits one effect
// trigger per destroyed craft. All events resolve independently: there
// is no priority order, and an entity already gone from an earlier
// event this frame does not suppress the triggers of a later one.
func (g *Game) resolveCollisions(events []*event.CollisionEvent) {
	for _, e := range events {
		switch e.Kind {
		case event.CraftSun:
			g.destroyCraft(entity.ID(e.CraftID))
			g.triggerExplosion(e.Position)

		case event.CraftCraft:
			g.destroyCraft(entity.ID(e.CraftID))
			g.destroyCraft(entity.ID(e.OtherID))
			g.triggerExplosion(e.Position)
			if other, ok := g.Crafts[entity.ID(e.OtherID)]; ok {
				g.triggerExplosion(other.Position)
			}

		case event.CraftBullet:
			if bullet, ok := g.Bullets[entity.ID(e.OtherID)]; ok {
				bullet.MarkHit()
			}
			g.destroyCraft(entity.ID(e.CraftID))
			g.triggerExplosion(e.Position)
		}

		g.EventBus.Publish(e)
	}
}

// destroyCraft deactivates a craft and announces it, exactly once
func (g *Game) destroyCraft(id entity.ID) {
	craft, ok := g.Crafts[id]
	if !ok || !craft.Active {
		return
	}
	craft.Active = false

	g.EventBus.Publish(event.NewCraftEvent(
		event.CraftDestroyed, g, uint64(craft.ID), craft.Position,
	))
}

// triggerExplosion notifies the effect sink, if one is installed
func (g *Game) triggerExplosion(position physics.Vector2D) {
	if g.effects != nil {
		g.effects.Trigger(position, event.ExplosionColor)
	}
}

// cleanupInactiveEntities removes dead bullets and craft
func (g *Game) cleanupInactiveEntities() {
	for id, bullet := range g.Bullets {
		if bullet.State != entity.BulletTraveling {
			delete(g.Bullets, id)
		}
	}
	for id, craft := range g.Crafts {
		if !craft.Active {
			delete(g.Crafts, id)
			g.Launcher.Forget(id)
		}
	}
}

// checkRoundEnd ends the round once at most one craft survives
func (g *Game) checkRoundEnd() {
	if g.Status != GameStatusActive {
		return
	}

	survivors := make([]*entity.Craft, 0, 2)
	for _, craft := range g.Crafts {
		if craft.Active {
			survivors = append(survivors, craft)
		}
	}
	if len(survivors) > 1 {
		return
	}

	g.Status = GameStatusEnded
	if len(survivors) == 1 {
		g.WinnerID = survivors[0].ID
	}
	g.EventBus.Publish(event.NewRoundEvent(event.RoundEnded, g, uint64(g.WinnerID)))
}

// craftList snapshots the craft map into a slice for the detector
func (g *Game) craftList() []*entity.Craft {
	crafts := make([]*entity.Craft, 0, len(g.Crafts))
	for _, craft := range g.Crafts {
		crafts = append(crafts, craft)
	}
	return crafts
}

// bulletList snapshots the bullet map into a slice for the detector
func (g *Game) bulletList() []*entity.Bullet {
	bullets := make([]*entity.Bullet, 0, len(g.Bullets))
	for _, bullet := range g.Bullets {
		bullets = append(bullets, bullet)
	}
	return bullets
}

// pkg/entity/bullet.go
package entity

import (
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// BulletState tracks a bullet through its lifecycle. Expired and Hit
// are terminal; a bullet never leaves either state once entered.
type BulletState int

const (
	BulletTraveling BulletState = iota
	BulletExpired
	BulletHit
)

// Bullet represents a projectile fired by a craft
type Bullet struct {
	BaseEntity
	OwnerID    ID
	TimeToLive float64
	State      BulletState
}

// Update advances the bullet and decrements its lifetime. When the
// lifetime reaches zero the bullet transitions to Expired exactly once.
func (b *Bullet) Update(deltaTime float64) {
	if b.State != BulletTraveling {
		return
	}

	b.BaseEntity.Update(deltaTime)

	b.TimeToLive -= deltaTime
	if b.TimeToLive <= 0 {
		b.State = BulletExpired
		b.Active = false
	}
}

// MarkHit transitions the bullet to the terminal Hit state
func (b *Bullet) MarkHit() {
	b.State = BulletHit
	b.Active = false
}

// Render implements Entity
func (b *Bullet) Render(r Renderer) {
	r.RenderBullet(b)
}

// LauncherConfig contains the tuning parameters for bullet fire
type LauncherConfig struct {
	Speed        float64 // bullet speed, independent of craft velocity
	TimeToLive   float64 // seconds
	Cooldown     float64 // seconds between shots per craft
	MuzzleOffset float64 // spawn distance from craft center along heading
}

// Launcher owns per-craft fire state: the cooldown timer that bounds
// fire rate and the previous-frame fire level used for edge detection.
type Launcher struct {
	Config LauncherConfig

	cooldowns map[ID]float64
	wasFiring map[ID]bool
}

// NewLauncher creates a launcher with the given configuration
func NewLauncher(config LauncherConfig) *Launcher {
	return &Launcher{
		Config:    config,
		cooldowns: make(map[ID]float64),
		wasFiring: make(map[ID]bool),
	}
}

// Tick advances all per-craft cooldown timers
func (l *Launcher) Tick(deltaTime float64) {
	for id, remaining := range l.cooldowns {
		remaining -= deltaTime
		if remaining <= 0 {
			delete(l.cooldowns, id)
		} else {
			l.cooldowns[id] = remaining
		}
	}
}

// TryFire spawns a bullet for the craft if its fire input transitioned
// from released to pressed this frame and the craft is off cooldown.
// A held fire key produces exactly one bullet per press.
func (l *Launcher) TryFire(craft *Craft, firing bool) *Bullet {
	wasFiring := l.wasFiring[craft.ID]
	l.wasFiring[craft.ID] = firing

	if !firing || wasFiring {
		return nil
	}
	if _, cooling := l.cooldowns[craft.ID]; cooling {
		return nil
	}

	l.cooldowns[craft.ID] = l.Config.Cooldown

	heading := craft.Heading()
	position := craft.Position.Add(heading.Scale(l.Config.MuzzleOffset))

	return &Bullet{
		BaseEntity: BaseEntity{
			ID:       GenerateID(),
			Position: position,
			Velocity: heading.Scale(l.Config.Speed),
			Rotation: craft.Rotation,
			Collider: physics.Circle{
				Center: position,
				Radius: 3,
			},
			Active: true,
		},
		OwnerID:    craft.ID,
		TimeToLive: l.Config.TimeToLive,
		State:      BulletTraveling,
	}
}

// Forget drops fire state for a craft that no longer exists
func (l *Launcher) Forget(craftID ID) {
	delete(l.cooldowns, craftID)
	delete(l.wasFiring, craftID)
}

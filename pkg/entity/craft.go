// pkg/entity/craft.go
package entity

import (
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// ControlState is the latched input for one craft for one frame.
// The host's input layer only exposes level state; fire-edge detection
// happens in the bullet launcher, not here.
type ControlState struct {
	Accelerate  bool
	RotateLeft  bool
	RotateRight bool
	Fire        bool
}

// CraftStats contains the tuning parameters for a craft
type CraftStats struct {
	ThrustAccel float64 // forward speed gained (and lost) per second
	MaxSpeed    float64
	TurnAccel   float64 // angular acceleration per held turn key, rad/s^2
	MaxTurnRate float64 // rad/s
	Radius      float64
}

// Craft represents a player-controlled rocket in the arena
type Craft struct {
	BaseEntity
	Name  string
	Color string // hex color, e.g. "#FF6600"
	Stats CraftStats

	// Derived kinematic state. Speed is the scalar forward magnitude;
	// velocity is recomputed from it every frame rather than integrated.
	Speed         float64
	RotationSpeed float64

	Input ControlState
}

// NewCraft creates a craft at the given position and rotation
func NewCraft(id ID, name string, position physics.Vector2D, rotation float64, stats CraftStats) *Craft {
	return &Craft{
		BaseEntity: BaseEntity{
			ID:       id,
			Position: position,
			Rotation: rotation,
			Collider: physics.Circle{
				Center: position,
				Radius: stats.Radius,
			},
			Active: true,
		},
		Name:  name,
		Stats: stats,
	}
}

// SetInput latches the control state for the next Steer call
func (c *Craft) SetInput(input ControlState) {
	c.Input = input
}

// Steer integrates thrust, rotation and heading for one frame. It
// leaves Position untouched: the caller applies gravity to Velocity,
// re-clamps it, and then moves the craft, so that the speed limit
// holds after all per-frame forces.
func (c *Craft) Steer(deltaTime float64) {
	if c.Input.Accelerate {
		if c.Speed < c.Stats.MaxSpeed {
			c.Speed += c.Stats.ThrustAccel * deltaTime
			if c.Speed > c.Stats.MaxSpeed {
				c.Speed = c.Stats.MaxSpeed
			}
		}
	} else if c.Speed > 0 {
		c.Speed -= c.Stats.ThrustAccel * deltaTime
		if c.Speed < 0 {
			c.Speed = 0
		}
	}

	var turnInput float64
	if c.Input.RotateLeft {
		turnInput += 1
	}
	if c.Input.RotateRight {
		turnInput -= 1
	}

	// With no turn key held the spin is left alone; only opposite
	// input cancels rotational momentum.
	c.RotationSpeed += turnInput * c.Stats.TurnAccel * deltaTime
	if c.RotationSpeed > c.Stats.MaxTurnRate {
		c.RotationSpeed = c.Stats.MaxTurnRate
	} else if c.RotationSpeed < -c.Stats.MaxTurnRate {
		c.RotationSpeed = -c.Stats.MaxTurnRate
	}

	c.Rotation += c.RotationSpeed * deltaTime
	c.Velocity = physics.Heading(c.Rotation).Scale(c.Speed)
}

// Heading returns the craft's current unit heading vector
func (c *Craft) Heading() physics.Vector2D {
	return physics.Heading(c.Rotation)
}

// Render implements Entity
func (c *Craft) Render(r Renderer) {
	r.RenderCraft(c)
}

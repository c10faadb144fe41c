// pkg/entity/entity.go
package entity

import (
	"sync/atomic"

	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Entity is the base interface for all simulation objects
type Entity interface {
	GetID() ID
	GetPosition() physics.Vector2D
	GetCollider() physics.Circle
	Update(deltaTime float64)
	Render(r Renderer)
}

// BaseEntity contains common functionality for all entities
type BaseEntity struct {
	ID       ID
	Position physics.Vector2D
	Velocity physics.Vector2D
	Rotation float64
	Collider physics.Circle
	Active   bool
}

// GetID returns the entity's unique identifier
func (e *BaseEntity) GetID() ID {
	return e.ID
}

// GetPosition returns the entity's position
func (e *BaseEntity) GetPosition() physics.Vector2D {
	return e.Position
}

// GetCollider returns the entity's collision shape
func (e *BaseEntity) GetCollider() physics.Circle {
	return physics.Circle{
		Center: e.Position,
		Radius: e.Collider.Radius,
	}
}

// Update advances the entity's position by its velocity
func (e *BaseEntity) Update(deltaTime float64) {
	e.Position = e.Position.Add(e.Velocity.Scale(deltaTime))
	e.Collider.Center = e.Position
}

// Render implements Entity. The base implementation does nothing.
func (e *BaseEntity) Render(r Renderer) {}

var nextID atomic.Uint64

// GenerateID generates a unique ID for entities
func GenerateID() ID {
	return ID(nextID.Add(1))
}

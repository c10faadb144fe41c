// pkg/event/event.go
package event

import (
	"sync"

	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// Type represents the type of event
type Type string

// Common event types
const (
	CraftCreated    Type = "craft_created"
	CraftDestroyed  Type = "craft_destroyed"
	BulletFired     Type = "bullet_fired"
	EntityCollision Type = "entity_collision"
	RoundStarted    Type = "round_started"
	RoundEnded      Type = "round_ended"
)

// CollisionKind distinguishes what collided
type CollisionKind int

const (
	CraftSun CollisionKind = iota
	CraftCraft
	CraftBullet
)

// String returns the kind's name for logging
func (k CollisionKind) String() string {
	switch k {
	case CraftSun:
		return "craft_sun"
	case CraftCraft:
		return "craft_craft"
	case CraftBullet:
		return "craft_bullet"
	default:
		return "unknown"
	}
}

// Color is an RGBA color payload for effect triggers
type Color struct {
	R, G, B, A uint8
}

// ExplosionColor is the fixed payload carried by every collision
// effect trigger.
var ExplosionColor = Color{R: 255, G: 165, B: 0, A: 255}

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching. Publish is
// synchronous: handlers run on the caller's goroutine before Publish
// returns, which keeps per-frame event handling inside the frame.
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// CollisionEvent describes one detected collision. It is a transient
// value: produced by collision detection, drained by the simulation
// loop the same frame, never stored across frames.
type CollisionEvent struct {
	BaseEvent
	Kind     CollisionKind
	Position physics.Vector2D
	CraftID  uint64
	OtherID  uint64 // second craft or the bullet, zero for CraftSun
}

// NewCollisionEvent creates a collision event of the given kind
func NewCollisionEvent(source interface{}, kind CollisionKind, position physics.Vector2D, craftID, otherID uint64) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: EntityCollision,
			Source:    source,
		},
		Kind:     kind,
		Position: position,
		CraftID:  craftID,
		OtherID:  otherID,
	}
}

// CraftEvent contains information about craft lifecycle events
type CraftEvent struct {
	BaseEvent
	CraftID  uint64
	Position physics.Vector2D
}

// NewCraftEvent creates a new craft lifecycle event
func NewCraftEvent(eventType Type, source interface{}, craftID uint64, position physics.Vector2D) *CraftEvent {
	return &CraftEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		CraftID:  craftID,
		Position: position,
	}
}

// RoundEvent announces round lifecycle transitions
type RoundEvent struct {
	BaseEvent
	WinnerID uint64 // zero when the round ended in mutual destruction
}

// NewRoundEvent creates a new round lifecycle event
func NewRoundEvent(eventType Type, source interface{}, winnerID uint64) *RoundEvent {
	return &RoundEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		WinnerID: winnerID,
	}
}

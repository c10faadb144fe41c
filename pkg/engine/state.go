// pkg/engine/state.go
package engine

import (
	"github.com/opd-ai/go-spacewars/pkg/entity"
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// GameState represents a snapshot of the simulation for renderers and
// other read-only consumers.
type GameState struct {
	Tick      uint64
	Status    GameStatus
	WinnerID  entity.ID
	Body      physics.CentralBody
	SunRadius float64
	Crafts    map[entity.ID]CraftState
	Bullets   map[entity.ID]BulletState
}

// CraftState represents a snapshot of a craft's state
type CraftState struct {
	ID            entity.ID
	Name          string
	Color         string
	Position      physics.Vector2D
	Velocity      physics.Vector2D
	Rotation      float64
	Speed         float64
	RotationSpeed float64
	Radius        float64
}

// BulletState represents a snapshot of a bullet's state
type BulletState struct {
	ID         entity.ID
	OwnerID    entity.ID
	Position   physics.Vector2D
	Velocity   physics.Vector2D
	TimeToLive float64
}

// GetGameState returns a snapshot of the current game state
func (g *Game) GetGameState() *GameState {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()

	state := &GameState{
		Tick:      g.CurrentTick,
		Status:    g.Status,
		WinnerID:  g.WinnerID,
		Body:      g.Body,
		SunRadius: g.Config.Sun.Radius,
		Crafts:    make(map[entity.ID]CraftState),
		Bullets:   make(map[entity.ID]BulletState),
	}

	for id, craft := range g.Crafts {
		if !craft.Active {
			continue
		}
		state.Crafts[id] = CraftState{
			ID:            id,
			Name:          craft.Name,
			Color:         craft.Color,
			Position:      craft.Position,
			Velocity:      craft.Velocity,
			Rotation:      craft.Rotation,
			Speed:         craft.Speed,
			RotationSpeed: craft.RotationSpeed,
			Radius:        craft.Collider.Radius,
		}
	}

	for id, bullet := range g.Bullets {
		if bullet.State != entity.BulletTraveling {
			continue
		}
		state.Bullets[id] = BulletState{
			ID:         id,
			OwnerID:    bullet.OwnerID,
			Position:   bullet.Position,
			Velocity:   bullet.Velocity,
			TimeToLive: bullet.TimeToLive,
		}
	}

	return state
}

// CraftIDs returns the IDs of all live craft in configuration order.
// Input layers use this to bind key sets to craft.
func (g *Game) CraftIDs() []entity.ID {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()

	ids := make([]entity.ID, 0, len(g.Crafts))
	for id := range g.Crafts {
		ids = append(ids, id)
	}
	// Map iteration order is random; callers want spawn order.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}

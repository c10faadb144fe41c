// pkg/render/engo/renderer.go
package engo

import (
	"fmt"
	"image/color"
	"math"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spacewars/pkg/engine"
	"github.com/opd-ai/go-spacewars/pkg/entity"
	"github.com/opd-ai/go-spacewars/pkg/event"
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// explosionLifetime is how many seconds an explosion flash stays visible
const explosionLifetime = 0.5

// EngoRenderer draws the simulation using the Engo game engine. Crafts
// are triangles pointing along their heading, bullets are small discs,
// the sun is a large disc at the origin. The renderer owns one Engo
// entity per simulation entity and keeps them in sync each frame.
type EngoRenderer struct {
	world        *ecs.World
	renderSystem *common.RenderSystem

	craftEntities  map[entity.ID]*renderEntity
	bulletEntities map[entity.ID]*renderEntity
	sunEntity      *renderEntity
	explosions     []*explosionEntity
}

// renderEntity bundles the components Engo's render system tracks by
// pointer, so mutating them here moves the drawable on screen.
type renderEntity struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
}

type explosionEntity struct {
	renderEntity
	remaining float64
}

// NewEngoRenderer creates a renderer bound to an ECS world
func NewEngoRenderer(world *ecs.World) *EngoRenderer {
	return &EngoRenderer{
		world:          world,
		craftEntities:  make(map[entity.ID]*renderEntity),
		bulletEntities: make(map[entity.ID]*renderEntity),
	}
}

// Initialize locates the world's render system. The scene must have
// added a common.RenderSystem before calling this.
func (r *EngoRenderer) Initialize() error {
	for _, system := range r.world.Systems() {
		if rs, ok := system.(*common.RenderSystem); ok {
			r.renderSystem = rs
			return nil
		}
	}
	return fmt.Errorf("world has no render system")
}

// SyncState reconciles the Engo entities with a simulation snapshot
// and ages explosion flashes.
func (r *EngoRenderer) SyncState(state *engine.GameState, deltaTime float64) {
	r.syncSun(state)
	r.syncCrafts(state)
	r.syncBullets(state)
	r.ageExplosions(deltaTime)
}

// Trigger implements the engine's effect sink by spawning a short
// lived orange flash at the collision position.
func (r *EngoRenderer) Trigger(position physics.Vector2D, c event.Color) {
	flash := &explosionEntity{remaining: explosionLifetime}
	flash.basic = ecs.NewBasic()
	flash.render = common.RenderComponent{
		Drawable: common.Circle{},
		Color:    color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A},
	}
	flash.space = common.SpaceComponent{
		Position: worldToScreen(position, 24),
		Width:    48,
		Height:   48,
	}
	r.renderSystem.Add(&flash.basic, &flash.render, &flash.space)
	r.explosions = append(r.explosions, flash)
}

func (r *EngoRenderer) syncSun(state *engine.GameState) {
	if r.sunEntity != nil {
		return
	}
	radius := float32(state.SunRadius)
	r.sunEntity = &renderEntity{
		basic: ecs.NewBasic(),
		render: common.RenderComponent{
			Drawable: common.Circle{},
			Color:    color.RGBA{R: 255, G: 220, B: 64, A: 255},
		},
		space: common.SpaceComponent{
			Position: worldToScreen(state.Body.Position, radius),
			Width:    radius * 2,
			Height:   radius * 2,
		},
	}
	r.renderSystem.Add(&r.sunEntity.basic, &r.sunEntity.render, &r.sunEntity.space)
}

func (r *EngoRenderer) syncCrafts(state *engine.GameState) {
	for id, craft := range state.Crafts {
		re, exists := r.craftEntities[id]
		if !exists {
			re = &renderEntity{basic: ecs.NewBasic()}
			re.render = common.RenderComponent{
				Drawable: common.Triangle{TriangleType: common.TriangleIsosceles},
				Color:    parseHexColor(craft.Color),
			}
			re.space = common.SpaceComponent{
				Width:  float32(craft.Radius * 2),
				Height: float32(craft.Radius * 2),
			}
			r.renderSystem.Add(&re.basic, &re.render, &re.space)
			r.craftEntities[id] = re
		}
		re.space.Position = worldToScreen(craft.Position, float32(craft.Radius))
		// Engo rotates clockwise in degrees; simulation rotation is
		// counterclockwise radians from +Y.
		re.space.Rotation = float32(-craft.Rotation * 180 / math.Pi)
	}

	for id, re := range r.craftEntities {
		if _, alive := state.Crafts[id]; !alive {
			r.renderSystem.Remove(re.basic)
			delete(r.craftEntities, id)
		}
	}
}

func (r *EngoRenderer) syncBullets(state *engine.GameState) {
	const bulletSize = 6
	for id, bullet := range state.Bullets {
		re, exists := r.bulletEntities[id]
		if !exists {
			re = &renderEntity{basic: ecs.NewBasic()}
			re.render = common.RenderComponent{
				Drawable: common.Circle{},
				Color:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
			}
			re.space = common.SpaceComponent{Width: bulletSize, Height: bulletSize}
			r.renderSystem.Add(&re.basic, &re.render, &re.space)
			r.bulletEntities[id] = re
		}
		re.space.Position = worldToScreen(bullet.Position, bulletSize/2)
	}

	for id, re := range r.bulletEntities {
		if _, alive := state.Bullets[id]; !alive {
			r.renderSystem.Remove(re.basic)
			delete(r.bulletEntities, id)
		}
	}
}

func (r *EngoRenderer) ageExplosions(deltaTime float64) {
	live := r.explosions[:0]
	for _, flash := range r.explosions {
		flash.remaining -= deltaTime
		if flash.remaining <= 0 {
			r.renderSystem.Remove(flash.basic)
			continue
		}
		live = append(live, flash)
	}
	r.explosions = live
}

// worldToScreen maps a world position to Engo screen space. The world
// origin sits at the window center with +Y up; Engo's origin is the
// top-left corner with +Y down. halfSize centers the drawable on the
// position.
func worldToScreen(worldPos physics.Vector2D, halfSize float32) engo.Point {
	return engo.Point{
		X: float32(worldPos.X) + engo.GameWidth()/2 - halfSize,
		Y: engo.GameHeight()/2 - float32(worldPos.Y) - halfSize,
	}
}

// parseHexColor parses "#RRGGBB" into an opaque RGBA color, falling
// back to white on malformed input.
func parseHexColor(s string) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

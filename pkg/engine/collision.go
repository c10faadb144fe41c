// pkg/engine/collision.go
package engine

import (
	"github.com/opd-ai/go-spacewars/pkg/entity"
	"github.com/opd-ai/go-spacewars/pkg/event"
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// DetectCollisions evaluates every collision rule against the current
// frame's post-move positions and returns all detected events. It is a
// pure function of its inputs: it mutates nothing, so running it twice
// on the same state yields the same events. Resolution (despawns,
// effect triggers, bullet state transitions) is the caller's job.
//
// Frames with zero craft or zero bullets degrade to no-op checks, not
// errors.
func DetectCollisions(crafts []*entity.Craft, bullets []*entity.Bullet, body physics.CentralBody) []*event.CollisionEvent {
	events := make([]*event.CollisionEvent, 0)

	events = append(events, detectSunCollisions(crafts, body)...)
	events = append(events, detectCraftCollisions(crafts)...)
	events = append(events, detectBulletHits(crafts, bullets)...)

	return events
}

// detectSunCollisions tests every active craft against the central body
func detectSunCollisions(crafts []*entity.Craft, body physics.CentralBody) []*event.CollisionEvent {
	var events []*event.CollisionEvent
	for _, craft := range crafts {
		if !craft.Active {
			continue
		}
		if physics.BodyCollides(craft.GetCollider(), body) {
			events = append(events, event.NewCollisionEvent(
				nil, event.CraftSun, craft.Position, uint64(craft.ID), 0,
			))
		}
	}
	return events
}

// detectCraftCollisions runs a pairwise scan over all live craft. The
// scan is O(n²) over unordered pairs, which is bounded in practice by
// the handful of craft a session ever holds.
func detectCraftCollisions(crafts []*entity.Craft) []*event.CollisionEvent {
	var events []*event.CollisionEvent
	for i := 0; i < len(crafts); i++ {
		if !crafts[i].Active {
			continue
		}
		for j := i + 1; j < len(crafts); j++ {
			if !crafts[j].Active {
				continue
			}
			if physics.CraftsCollide(crafts[i].GetCollider(), crafts[j].GetCollider()) {
				events = append(events, event.NewCollisionEvent(
					nil, event.CraftCraft, crafts[i].Position,
					uint64(crafts[i].ID), uint64(crafts[j].ID),
				))
			}
		}
	}
	return events
}

// detectBulletHits tests every traveling bullet against every craft
// except its owner. A quadtree over craft positions prunes candidates
// when the craft count grows beyond the base duel.
func detectBulletHits(crafts []*entity.Craft, bullets []*entity.Bullet) []*event.CollisionEvent {
	if len(crafts) == 0 || len(bullets) == 0 {
		return nil
	}

	index, maxRadius := buildCraftIndex(crafts)

	var events []*event.CollisionEvent
	for _, bullet := range bullets {
		if bullet.State != entity.BulletTraveling {
			continue
		}

		area := physics.Rect{
			Center: bullet.Position,
			Width:  maxRadius * 4,
			Height: maxRadius * 4,
		}
		for _, candidate := range index.Query(area) {
			craft, ok := candidate.(*entity.Craft)
			if !ok || craft.ID == bullet.OwnerID {
				continue
			}
			if physics.PointHits(bullet.Position, craft.GetCollider()) {
				events = append(events, event.NewCollisionEvent(
					nil, event.CraftBullet, craft.Position,
					uint64(craft.ID), uint64(bullet.ID),
				))
			}
		}
	}
	return events
}

// buildCraftIndex builds a quadtree over active craft positions sized
// to cover every craft regardless of how far gravity has slung them.
func buildCraftIndex(crafts []*entity.Craft) (*physics.QuadTree, float64) {
	extent := 1000.0
	maxRadius := 1.0
	for _, craft := range crafts {
		if !craft.Active {
			continue
		}
		if r := craft.Collider.Radius; r > maxRadius {
			maxRadius = r
		}
		if d := craft.Position.Length() + craft.Collider.Radius; d > extent {
			extent = d
		}
	}

	index := physics.NewQuadTree(physics.Rect{
		Center: physics.Vector2D{},
		Width:  extent * 2.5,
		Height: extent * 2.5,
	}, 8)

	for _, craft := range crafts {
		if craft.Active {
			index.Insert(craft.Position, craft)
		}
	}
	return index, maxRadius
}

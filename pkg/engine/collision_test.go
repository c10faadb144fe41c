// pkg/engine/collision_test.go
package engine

import (
	"testing"

	"github.com/opd-ai/go-spacewars/pkg/entity"
	"github.com/opd-ai/go-spacewars/pkg/event"
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

func testBody() physics.CentralBody {
	return physics.CentralBody{
		Position:        physics.Vector2D{},
		GravityConstant: 125000000,
		CollisionRadius: 30,
	}
}

func craftAt(pos physics.Vector2D) *entity.Craft {
	return entity.NewCraft(entity.GenerateID(), "test", pos, 0, entity.CraftStats{
		ThrustAccel: 50,
		MaxSpeed:    250,
		TurnAccel:   3.5,
		MaxTurnRate: 1.2,
		Radius:      20,
	})
}

func bulletAt(pos physics.Vector2D, owner entity.ID) *entity.Bullet {
	return &entity.Bullet{
		BaseEntity: entity.BaseEntity{
			ID:       entity.GenerateID(),
			Position: pos,
			Active:   true,
		},
		OwnerID:    owner,
		TimeToLive: 2.0,
		State:      entity.BulletTraveling,
	}
}

func TestDetectCollisions_Empty(t *testing.T) {
	t.Run("no_entities", func(t *testing.T) {
		events := DetectCollisions(nil, nil, testBody())
		if len(events) != 0 {
			t.Errorf("expected no events, got %d", len(events))
		}
	})

	t.Run("single_safe_craft", func(t *testing.T) {
		crafts := []*entity.Craft{craftAt(physics.Vector2D{X: 400, Y: 0})}
		events := DetectCollisions(crafts, nil, testBody())
		if len(events) != 0 {
			t.Errorf("expected no events, got %d", len(events))
		}
	})
}

func TestDetectCollisions_CraftSun(t *testing.T) {
	tests := []struct {
		name     string
		position physics.Vector2D
		expected int
	}{
		{name: "inside_margin", position: physics.Vector2D{X: 45, Y: 0}, expected: 1},
		{name: "outside_margin", position: physics.Vector2D{X: 55, Y: 0}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crafts := []*entity.Craft{craftAt(tt.position)}
			events := DetectCollisions(crafts, nil, testBody())

			if len(events) != tt.expected {
				t.Fatalf("got %d events, expected %d", len(events), tt.expected)
			}
			if tt.expected == 1 {
				if events[0].Kind != event.CraftSun {
					t.Errorf("Kind = %v, expected CraftSun", events[0].Kind)
				}
				if events[0].Position != tt.position {
					t.Errorf("Position = %v, expected craft position %v", events[0].Position, tt.position)
				}
			}
		})
	}
}

func TestDetectCollisions_CraftCraft(t *testing.T) {
	t.Run("identical_position", func(t *testing.T) {
		a := craftAt(physics.Vector2D{X: 200, Y: 200})
		b := craftAt(physics.Vector2D{X: 200, Y: 200})
		events := DetectCollisions([]*entity.Craft{a, b}, nil, testBody())

		if len(events) != 1 {
			t.Fatalf("got %d events, expected 1", len(events))
		}
		if events[0].Kind != event.CraftCraft {
			t.Errorf("Kind = %v, expected CraftCraft", events[0].Kind)
		}
		if events[0].CraftID != uint64(a.ID) || events[0].OtherID != uint64(b.ID) {
			t.Errorf("IDs = (%d, %d), expected (%d, %d)",
				events[0].CraftID, events[0].OtherID, a.ID, b.ID)
		}
	})

	t.Run("separated_craft", func(t *testing.T) {
		a := craftAt(physics.Vector2D{X: 200, Y: 0})
		b := craftAt(physics.Vector2D{X: 300, Y: 0})
		events := DetectCollisions([]*entity.Craft{a, b}, nil, testBody())
		if len(events) != 0 {
			t.Errorf("got %d events, expected 0", len(events))
		}
	})

	t.Run("inactive_craft_ignored", func(t *testing.T) {
		a := craftAt(physics.Vector2D{X: 200, Y: 200})
		b := craftAt(physics.Vector2D{X: 200, Y: 200})
		b.Active = false
		events := DetectCollisions([]*entity.Craft{a, b}, nil, testBody())
		if len(events) != 0 {
			t.Errorf("got %d events, expected 0 with one craft inactive", len(events))
		}
	})
}

func TestDetectCollisions_CraftBullet(t *testing.T) {
	owner := craftAt(physics.Vector2D{X: -300, Y: 0})
	target := craftAt(physics.Vector2D{X: 300, Y: 0})

	t.Run("bullet_hits_non_owner", func(t *testing.T) {
		bullet := bulletAt(physics.Vector2D{X: 305, Y: 0}, owner.ID)
		events := DetectCollisions([]*entity.Craft{owner, target}, []*entity.Bullet{bullet}, testBody())

		if len(events) != 1 {
			t.Fatalf("got %d events, expected 1", len(events))
		}
		if events[0].Kind != event.CraftBullet {
			t.Errorf("Kind = %v, expected CraftBullet", events[0].Kind)
		}
		if events[0].CraftID != uint64(target.ID) {
			t.Errorf("CraftID = %d, expected target %d", events[0].CraftID, target.ID)
		}
		if events[0].OtherID != uint64(bullet.ID) {
			t.Errorf("OtherID = %d, expected bullet %d", events[0].OtherID, bullet.ID)
		}
	})

	t.Run("owner_immune_to_own_bullet", func(t *testing.T) {
		bullet := bulletAt(physics.Vector2D{X: -295, Y: 0}, owner.ID)
		events := DetectCollisions([]*entity.Craft{owner, target}, []*entity.Bullet{bullet}, testBody())
		if len(events) != 0 {
			t.Errorf("got %d events, expected 0 for owner overlap", len(events))
		}
	})

	t.Run("expired_bullet_ignored", func(t *testing.T) {
		bullet := bulletAt(physics.Vector2D{X: 305, Y: 0}, owner.ID)
		bullet.State = entity.BulletExpired
		events := DetectCollisions([]*entity.Craft{owner, target}, []*entity.Bullet{bullet}, testBody())
		if len(events) != 0 {
			t.Errorf("got %d events, expected 0 for expired bullet", len(events))
		}
	})
}

func TestDetectCollisions_Idempotent(t *testing.T) {
	// Detection is pure over current positions: running it twice on
	// the same unmodified state yields the same events.
	a := craftAt(physics.Vector2D{X: 40, Y: 0}) // sun collision
	b := craftAt(physics.Vector2D{X: 45, Y: 5}) // sun collision + craft collision with a
	bullet := bulletAt(physics.Vector2D{X: 42, Y: 2}, 999999)
	crafts := []*entity.Craft{a, b}
	bullets := []*entity.Bullet{bullet}

	first := DetectCollisions(crafts, bullets, testBody())
	second := DetectCollisions(crafts, bullets, testBody())

	if len(first) != len(second) {
		t.Fatalf("event counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Kind != second[i].Kind ||
			first[i].CraftID != second[i].CraftID ||
			first[i].OtherID != second[i].OtherID {
			t.Errorf("event %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestDetectCollisions_SimultaneousEventsAllEmitted(t *testing.T) {
	// A craft can be in a sun collision and a craft collision in the
	// same frame; both events are emitted with no priority ordering.
	a := craftAt(physics.Vector2D{X: 40, Y: 0})
	b := craftAt(physics.Vector2D{X: 42, Y: 0})
	events := DetectCollisions([]*entity.Craft{a, b}, nil, testBody())

	kinds := make(map[event.CollisionKind]int)
	for _, e := range events {
		kinds[e.Kind]++
	}

	if kinds[event.CraftSun] != 2 {
		t.Errorf("CraftSun events = %d, expected 2", kinds[event.CraftSun])
	}
	if kinds[event.CraftCraft] != 1 {
		t.Errorf("CraftCraft events = %d, expected 1", kinds[event.CraftCraft])
	}
}

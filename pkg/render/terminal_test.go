package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/opd-ai/go-spacewars/pkg/entity"
	"github.com/opd-ai/go-spacewars/pkg/event"
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

func testCraft(name string, pos physics.Vector2D) *entity.Craft {
	return entity.NewCraft(entity.GenerateID(), name, pos, 0, entity.CraftStats{
		ThrustAccel: 50,
		MaxSpeed:    250,
		TurnAccel:   3.5,
		MaxTurnRate: 1.2,
		Radius:      20,
	})
}

func TestTerminalRenderer_PlotsEntities(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, 40, 20, 400)

	r.Clear()
	r.RenderCraft(testCraft("Vostok", physics.Vector2D{X: 0, Y: 0}))
	r.Present()

	frame := buf.String()
	if !strings.Contains(frame, "V") {
		t.Error("frame does not contain the craft glyph")
	}
	lines := strings.Split(strings.TrimRight(frame, "\n"), "\n")
	if len(lines) != 22 { // 20 rows plus top and bottom border
		t.Errorf("frame has %d lines, expected 22", len(lines))
	}
}

func TestTerminalRenderer_ClipsOffscreen(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, 40, 20, 400)

	r.Clear()
	r.RenderCraft(testCraft("Far", physics.Vector2D{X: 10000, Y: -10000}))
	r.RenderBullet(&entity.Bullet{
		BaseEntity: entity.BaseEntity{Position: physics.Vector2D{X: -99999}},
	})
	r.Present()

	frame := buf.String()
	if strings.Contains(frame, "F") || strings.Contains(frame, ".") {
		t.Error("offscreen entities leaked into the frame")
	}
}

func TestTerminalRenderer_ExplosionMarkerDecays(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf, 40, 20, 400)

	r.Trigger(physics.Vector2D{X: 0, Y: 0}, event.ExplosionColor)

	for i := 0; i < explosionFrames; i++ {
		buf.Reset()
		r.Clear()
		r.Present()
		if !strings.Contains(buf.String(), "*") {
			t.Fatalf("explosion marker missing on frame %d", i)
		}
	}

	buf.Reset()
	r.Clear()
	r.Present()
	if strings.Contains(buf.String(), "*") {
		t.Error("explosion marker survived past its lifetime")
	}
}

func TestNullRenderer_CountsFramesAndExplosions(t *testing.T) {
	r := NewNullRenderer()

	r.Clear()
	r.RenderCraft(testCraft("x", physics.Vector2D{}))
	r.RenderBody(physics.CentralBody{CollisionRadius: 30})
	r.Present()
	r.Present()
	r.Trigger(physics.Vector2D{X: 1, Y: 2}, event.ExplosionColor)

	if r.Frames != 2 {
		t.Errorf("Frames = %d, expected 2", r.Frames)
	}
	if r.Explosions != 1 {
		t.Errorf("Explosions = %d, expected 1", r.Explosions)
	}
}

// Package render provides renderer implementations that do not require
// a display: a no-op renderer for tests and servers, and a terminal
// renderer for headless sessions.
package render

import (
	"context"

	"github.com/opd-ai/go-spacewars/pkg/entity"
	"github.com/opd-ai/go-spacewars/pkg/event"
	"github.com/opd-ai/go-spacewars/pkg/logging"
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// NullRenderer discards all draw calls. It still counts frames and
// logs explosion triggers at debug level, which makes it useful for
// soak tests and headless profiling.
type NullRenderer struct {
	logger *logging.Logger

	Frames     uint64
	Explosions uint64
}

// NewNullRenderer creates a renderer that draws nothing
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// Clear implements entity.Renderer
func (r *NullRenderer) Clear() {}

// Present implements entity.Renderer
func (r *NullRenderer) Present() {
	r.Frames++
}

// RenderCraft implements entity.Renderer
func (r *NullRenderer) RenderCraft(craft *entity.Craft) {}

// RenderBullet implements entity.Renderer
func (r *NullRenderer) RenderBullet(bullet *entity.Bullet) {}

// RenderBody implements entity.Renderer
func (r *NullRenderer) RenderBody(body physics.CentralBody) {}

// Trigger implements the engine's effect sink
func (r *NullRenderer) Trigger(position physics.Vector2D, color event.Color) {
	r.Explosions++
	r.logger.Debug(context.Background(), "explosion",
		"x", position.X, "y", position.Y,
	)
}

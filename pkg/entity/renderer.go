// pkg/entity/renderer.go
package entity

import (
	"github.com/opd-ai/go-spacewars/pkg/physics"
)

// Renderer defines the rendering operations entities need. Concrete
// implementations live in pkg/render; the simulation core only ever
// calls through this interface.
type Renderer interface {
	Clear()
	Present()
	RenderCraft(craft *Craft)
	RenderBullet(bullet *Bullet)
	RenderBody(body physics.CentralBody)
}

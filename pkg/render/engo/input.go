// pkg/render/engo/input.go
package engo

import (
	"fmt"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-spacewars/pkg/config"
	"github.com/opd-ai/go-spacewars/pkg/engine"
	"github.com/opd-ai/go-spacewars/pkg/entity"
)

// InputSystem polls the configured key bindings each frame and latches
// the resulting control state into the simulation. Craft slots bind to
// craft in spawn order.
type InputSystem struct {
	game     *engine.Game
	bindings []craftButtons
	craftIDs []entity.ID
}

// craftButtons holds the registered Engo button names for one slot
type craftButtons struct {
	accelerate  string
	rotateLeft  string
	rotateRight string
	fire        string
}

// NewInputSystem creates an input system for the given game. Call
// RegisterControlBindings before the scene starts updating.
func NewInputSystem(game *engine.Game, cfg *config.GameConfig) *InputSystem {
	is := &InputSystem{game: game}
	for i := range cfg.Crafts {
		is.bindings = append(is.bindings, craftButtons{
			accelerate:  buttonName(i, "accelerate"),
			rotateLeft:  buttonName(i, "rotate_left"),
			rotateRight: buttonName(i, "rotate_right"),
			fire:        buttonName(i, "fire"),
		})
	}
	is.craftIDs = game.CraftIDs()
	return is
}

// Add satisfies the ecs.System interface
func (is *InputSystem) Add(basic *ecs.BasicEntity) {}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update polls every bound key set and forwards it to the simulation.
// Destroyed craft are skipped; their keys go dead with them.
func (is *InputSystem) Update(dt float32) {
	for i, buttons := range is.bindings {
		if i >= len(is.craftIDs) {
			break
		}
		state := entity.ControlState{
			Accelerate:  engo.Input.Button(buttons.accelerate).Down(),
			RotateLeft:  engo.Input.Button(buttons.rotateLeft).Down(),
			RotateRight: engo.Input.Button(buttons.rotateRight).Down(),
			Fire:        engo.Input.Button(buttons.fire).Down(),
		}
		// SetCraftInput fails once the craft is destroyed; that is
		// expected during a round's endgame.
		_ = is.game.SetCraftInput(is.craftIDs[i], state)
	}
}

// RegisterControlBindings registers one Engo button per configured
// action, named by slot index so multiple local players can share a
// keyboard.
func RegisterControlBindings(cfg *config.GameConfig) error {
	for i, slot := range cfg.Crafts {
		actions := []struct {
			name string
			key  string
		}{
			{buttonName(i, "accelerate"), slot.Controls.Accelerate},
			{buttonName(i, "rotate_left"), slot.Controls.RotateLeft},
			{buttonName(i, "rotate_right"), slot.Controls.RotateRight},
			{buttonName(i, "fire"), slot.Controls.Fire},
		}
		for _, action := range actions {
			key, err := keyFromName(action.key)
			if err != nil {
				return fmt.Errorf("craft slot %d: %w", i, err)
			}
			engo.Input.RegisterButton(action.name, key)
		}
	}
	return nil
}

func buttonName(slot int, action string) string {
	return fmt.Sprintf("craft%d_%s", slot, action)
}

// keyNames maps config key names onto Engo key constants
var keyNames = map[string]engo.Key{
	"A": engo.KeyA, "B": engo.KeyB, "C": engo.KeyC, "D": engo.KeyD,
	"E": engo.KeyE, "F": engo.KeyF, "G": engo.KeyG, "H": engo.KeyH,
	"I": engo.KeyI, "J": engo.KeyJ, "K": engo.KeyK, "L": engo.KeyL,
	"M": engo.KeyM, "N": engo.KeyN, "O": engo.KeyO, "P": engo.KeyP,
	"Q": engo.KeyQ, "R": engo.KeyR, "S": engo.KeyS, "T": engo.KeyT,
	"U": engo.KeyU, "V": engo.KeyV, "W": engo.KeyW, "X": engo.KeyX,
	"Y": engo.KeyY, "Z": engo.KeyZ,
	"Space":      engo.KeySpace,
	"Enter":      engo.KeyEnter,
	"Tab":        engo.KeyTab,
	"LeftShift":  engo.KeyLeftShift,
	"RightShift": engo.KeyRightShift,
	"ArrowUp":    engo.KeyArrowUp,
	"ArrowDown":  engo.KeyArrowDown,
	"ArrowLeft":  engo.KeyArrowLeft,
	"ArrowRight": engo.KeyArrowRight,
}

// keyFromName resolves a config key name to an Engo key constant
func keyFromName(name string) (engo.Key, error) {
	key, ok := keyNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown key name %q", name)
	}
	return key, nil
}

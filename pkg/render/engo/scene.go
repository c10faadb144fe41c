// pkg/render/engo/scene.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-spacewars/pkg/config"
	"github.com/opd-ai/go-spacewars/pkg/engine"
)

// GameScene hosts a local simulation inside an Engo window: it steps
// the game each frame, polls the keyboard and mirrors the game state
// into drawable entities.
type GameScene struct {
	world    *ecs.World
	game     *engine.Game
	cfg      *config.GameConfig
	renderer *EngoRenderer
}

// NewGameScene creates a scene around an already configured game
func NewGameScene(game *engine.Game, cfg *config.GameConfig) *GameScene {
	return &GameScene{
		game: game,
		cfg:  cfg,
	}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "GameScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *GameScene) Preload() {
	if err := RegisterControlBindings(scene.cfg); err != nil {
		panic("invalid control bindings: " + err.Error())
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	scene.world = &ecs.World{}
	if w, ok := u.(*ecs.World); ok {
		scene.world = w
	}

	scene.world.AddSystem(&common.RenderSystem{})

	scene.renderer = NewEngoRenderer(scene.world)
	if err := scene.renderer.Initialize(); err != nil {
		panic("failed to initialize renderer: " + err.Error())
	}
	scene.game.SetEffectSink(scene.renderer)

	scene.world.AddSystem(NewInputSystem(scene.game, scene.cfg))
	scene.world.AddSystem(&simulationSystem{
		game:     scene.game,
		renderer: scene.renderer,
	})

	scene.game.Start()
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *GameScene) Exit() {
	scene.game.Stop()
}

// simulationSystem advances the game by the frame delta and syncs the
// renderer afterwards. It runs after the input system so the frame's
// key state is already latched.
type simulationSystem struct {
	game     *engine.Game
	renderer *EngoRenderer
}

// Remove satisfies the ecs.System interface
func (s *simulationSystem) Remove(basic ecs.BasicEntity) {}

// Update steps the simulation and reconciles the drawables
func (s *simulationSystem) Update(dt float32) {
	deltaTime := float64(dt)
	if deltaTime > 0.1 {
		deltaTime = 0.1
	}
	s.game.Step(deltaTime)
	s.renderer.SyncState(s.game.GetGameState(), deltaTime)
}

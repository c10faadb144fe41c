// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/opd-ai/go-spacewars/pkg/entity"
)

// GameConfig contains the full tuning for a session
type GameConfig struct {
	Sun    SunConfig     `json:"sun"`
	Craft  CraftSettings `json:"craft"`
	Bullet BulletConfig  `json:"bullet"`
	Crafts []CraftConfig `json:"crafts"`
}

// SunConfig describes the central body
type SunConfig struct {
	GravityConstant float64 `json:"gravityConstant"`
	InfluenceCutoff float64 `json:"influenceCutoff"`
	CollisionMargin float64 `json:"collisionMargin"`
	Radius          float64 `json:"radius"` // visual radius only
}

// CraftSettings contains tuning shared by all craft. Angular values are
// stored in degrees because they read better in a config file.
type CraftSettings struct {
	ThrustAccel     float64 `json:"thrustAccel"`
	MaxSpeed        float64 `json:"maxSpeed"`
	TurnAccelDeg    float64 `json:"turnAccelDeg"`   // deg/s^2
	MaxTurnRateDeg  float64 `json:"maxTurnRateDeg"` // deg/s
	CollisionRadius float64 `json:"collisionRadius"`
}

// Stats converts the settings into runtime craft stats (radians)
func (s CraftSettings) Stats() entity.CraftStats {
	return entity.CraftStats{
		ThrustAccel: s.ThrustAccel,
		MaxSpeed:    s.MaxSpeed,
		TurnAccel:   s.TurnAccelDeg * math.Pi / 180,
		MaxTurnRate: s.MaxTurnRateDeg * math.Pi / 180,
		Radius:      s.CollisionRadius,
	}
}

// BulletConfig contains bullet tuning
type BulletConfig struct {
	Speed        float64 `json:"speed"`
	TimeToLive   float64 `json:"timeToLive"`
	Cooldown     float64 `json:"cooldown"`
	MuzzleOffset float64 `json:"muzzleOffset"`
}

// LauncherConfig converts the settings into a runtime launcher config
func (b BulletConfig) LauncherConfig() entity.LauncherConfig {
	return entity.LauncherConfig{
		Speed:        b.Speed,
		TimeToLive:   b.TimeToLive,
		Cooldown:     b.Cooldown,
		MuzzleOffset: b.MuzzleOffset,
	}
}

// ControlBindings names the host keys driving one craft. The names are
// resolved by the input layer; the core never interprets them.
type ControlBindings struct {
	Accelerate  string `json:"accelerate"`
	RotateLeft  string `json:"rotateLeft"`
	RotateRight string `json:"rotateRight"`
	Fire        string `json:"fire"`
}

// CraftConfig contains one craft's spawn slot
type CraftConfig struct {
	Name        string          `json:"name"`
	Color       string          `json:"color"`
	X           float64         `json:"x"`
	Y           float64         `json:"y"`
	RotationDeg float64         `json:"rotationDeg"`
	Controls    ControlBindings `json:"controls"`
}

// Rotation returns the spawn rotation in radians
func (c CraftConfig) Rotation() float64 {
	return c.RotationDeg * math.Pi / 180
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the stock two-player duel
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Sun: SunConfig{
			GravityConstant: 125000000,
			InfluenceCutoff: 65,
			CollisionMargin: 30,
			Radius:          50,
		},
		Craft: CraftSettings{
			ThrustAccel:     50,
			MaxSpeed:        250,
			TurnAccelDeg:    200,
			MaxTurnRateDeg:  70,
			CollisionRadius: 20,
		},
		Bullet: BulletConfig{
			Speed:        500,
			TimeToLive:   2.0,
			Cooldown:     0.3,
			MuzzleOffset: 24,
		},
		Crafts: []CraftConfig{
			{
				Name:        "Vostok",
				Color:       "#55AAFF",
				X:           -300,
				Y:           0,
				RotationDeg: 180,
				Controls: ControlBindings{
					Accelerate:  "W",
					RotateLeft:  "A",
					RotateRight: "D",
					Fire:        "Space",
				},
			},
			{
				Name:        "Mercury",
				Color:       "#FF5555",
				X:           300,
				Y:           0,
				RotationDeg: 0,
				Controls: ControlBindings{
					Accelerate:  "ArrowUp",
					RotateLeft:  "ArrowLeft",
					RotateRight: "ArrowRight",
					Fire:        "Enter",
				},
			},
		},
	}
}

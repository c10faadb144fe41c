// Package validation checks game configurations before the simulation
// accepts them. Callers validate a loaded config once; the engine then
// trusts it for the whole session.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/opd-ai/go-spacewars/pkg/config"
)

// Configuration limits
const (
	MaxCraftNameLen = 32
	MinCraftSlots   = 2
	MaxCraftSlots   = 8
)

// Allow alphanumeric, spaces, hyphens, underscores, and basic punctuation
// for craft names.
var validCraftNameChars = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.]+$`)

// ValidateGameConfig checks every tuning value a session depends on.
// It returns the first problem found.
func ValidateGameConfig(cfg *config.GameConfig) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := validateSun(cfg.Sun); err != nil {
		return err
	}
	if err := validateCraftSettings(cfg.Craft); err != nil {
		return err
	}
	if err := validateBullet(cfg.Bullet); err != nil {
		return err
	}

	if len(cfg.Crafts) < MinCraftSlots {
		return fmt.Errorf("need at least %d craft slots, got %d", MinCraftSlots, len(cfg.Crafts))
	}
	if len(cfg.Crafts) > MaxCraftSlots {
		return fmt.Errorf("too many craft slots: %d (max %d)", len(cfg.Crafts), MaxCraftSlots)
	}
	for i, slot := range cfg.Crafts {
		if err := validateCraftSlot(slot); err != nil {
			return fmt.Errorf("craft slot %d: %w", i, err)
		}
	}

	return nil
}

func validateSun(sun config.SunConfig) error {
	if sun.GravityConstant < 0 {
		return fmt.Errorf("gravity constant cannot be negative: %f", sun.GravityConstant)
	}
	if sun.InfluenceCutoff < 0 {
		return fmt.Errorf("influence cutoff cannot be negative: %f", sun.InfluenceCutoff)
	}
	if sun.CollisionMargin <= 0 {
		return fmt.Errorf("collision margin must be positive: %f", sun.CollisionMargin)
	}
	return nil
}

func validateCraftSettings(craft config.CraftSettings) error {
	if craft.ThrustAccel <= 0 {
		return fmt.Errorf("thrust acceleration must be positive: %f", craft.ThrustAccel)
	}
	if craft.MaxSpeed <= 0 {
		return fmt.Errorf("max speed must be positive: %f", craft.MaxSpeed)
	}
	if craft.TurnAccelDeg <= 0 {
		return fmt.Errorf("turn acceleration must be positive: %f", craft.TurnAccelDeg)
	}
	if craft.MaxTurnRateDeg <= 0 {
		return fmt.Errorf("max turn rate must be positive: %f", craft.MaxTurnRateDeg)
	}
	if craft.CollisionRadius <= 0 {
		return fmt.Errorf("collision radius must be positive: %f", craft.CollisionRadius)
	}
	return nil
}

func validateBullet(bullet config.BulletConfig) error {
	if bullet.Speed <= 0 {
		return fmt.Errorf("bullet speed must be positive: %f", bullet.Speed)
	}
	if bullet.TimeToLive <= 0 {
		return fmt.Errorf("bullet time to live must be positive: %f", bullet.TimeToLive)
	}
	if bullet.Cooldown < 0 {
		return fmt.Errorf("bullet cooldown cannot be negative: %f", bullet.Cooldown)
	}
	if bullet.MuzzleOffset < 0 {
		return fmt.Errorf("muzzle offset cannot be negative: %f", bullet.MuzzleOffset)
	}
	return nil
}

func validateCraftSlot(slot config.CraftConfig) error {
	if _, err := ValidateCraftName(slot.Name); err != nil {
		return err
	}
	return validateControls(slot.Controls)
}

func validateControls(controls config.ControlBindings) error {
	bindings := []struct {
		action string
		key    string
	}{
		{"accelerate", controls.Accelerate},
		{"rotate left", controls.RotateLeft},
		{"rotate right", controls.RotateRight},
		{"fire", controls.Fire},
	}
	seen := make(map[string]string, len(bindings))
	for _, b := range bindings {
		if b.key == "" {
			return fmt.Errorf("%s binding cannot be empty", b.action)
		}
		if other, dup := seen[b.key]; dup {
			return fmt.Errorf("key %q bound to both %s and %s", b.key, other, b.action)
		}
		seen[b.key] = b.action
	}
	return nil
}

// ValidateCraftName validates and trims a craft name
func ValidateCraftName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("craft name cannot be empty")
	}

	if len(name) > MaxCraftNameLen {
		return "", fmt.Errorf("craft name too long: %d characters (max %d)", len(name), MaxCraftNameLen)
	}

	if !utf8.ValidString(name) {
		return "", fmt.Errorf("craft name contains invalid UTF-8 characters")
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("craft name cannot be only whitespace")
	}

	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("craft name contains control characters")
		}
	}

	if !validCraftNameChars.MatchString(trimmed) {
		return "", fmt.Errorf("craft name contains invalid characters (only alphanumeric, spaces, hyphens, underscores, and periods allowed)")
	}

	return trimmed, nil
}

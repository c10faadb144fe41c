// pkg/physics/gravity.go
package physics

// CentralBody is the immutable gravitational attractor at the center of
// the arena. It never moves and is passed explicitly to anything that
// needs it rather than living as package state.
type CentralBody struct {
	Position        Vector2D
	GravityConstant float64
	CollisionRadius float64
}

// GravityField computes the acceleration contributed by a single
// central body. Inside InfluenceCutoff the field is forced to zero:
// an inverse-square law blows up near the singularity, and the cutoff
// keeps velocities finite instead of modeling a softening kernel.
type GravityField struct {
	Body            CentralBody
	InfluenceCutoff float64
}

// NewGravityField creates a field around the given body.
func NewGravityField(body CentralBody, influenceCutoff float64) *GravityField {
	return &GravityField{
		Body:            body,
		InfluenceCutoff: influenceCutoff,
	}
}

// Acceleration returns the gravitational acceleration at position.
// The result is always finite and points toward the body, or is the
// zero vector inside the influence cutoff.
func (f *GravityField) Acceleration(position Vector2D) Vector2D {
	direction := f.Body.Position.Sub(position)
	distance := direction.Length()

	if distance < f.InfluenceCutoff {
		return Vector2D{}
	}

	force := f.Body.GravityConstant / (distance * distance)
	return direction.Normalize().Scale(force)
}

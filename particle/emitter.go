package particle

import (
	"errors"
	"fmt"

	"github.com/elifdiril/Chaos-Projectile/parameter"
	"github.com/elifdiril/Chaos-Projectile/vmath"
)

// ErrInvalidConfiguration is returned by NewEmitter for inputs that cannot
// produce a valid particle fan.
var ErrInvalidConfiguration = errors.New("particle: invalid emitter configuration")

// Emitter owns a fixed set of particles spawned with an angular velocity
// spread around a base direction. The particle count never changes after
// construction; Position is the spawn anchor and is not moved afterwards.
//
// Life is an emitter-level countdown decremented once per full Update. It is
// independent from the particles' own life and does not gate their existence.
type Emitter struct {
	Position  vmath.Vector2
	Life      int
	Particles []Particle
}

// NewEmitter spawns amount particles sharing position, life and acceleration,
// with velocities fanned out 30° apart and centered on the direction of
// velocity: particle p gets the angular offset 30°·p − 30°·(amount−1)/2, so
// the first and last particles sit symmetric about the base direction and an
// odd amount puts the middle particle exactly on it.
//
// Returns ErrInvalidConfiguration when amount <= 0 or velocity is the zero
// vector (rotation is undefined without a base direction).
func NewEmitter(position vmath.Vector2, amount, life int, velocity, acceleration vmath.Vector2) (*Emitter, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount %d, must be positive", ErrInvalidConfiguration, amount)
	}
	if velocity.IsZero() {
		return nil, fmt.Errorf("%w: zero base velocity has no direction", ErrInvalidConfiguration)
	}

	e := &Emitter{
		Position:  position,
		Life:      life,
		Particles: make([]Particle, 0, amount),
	}

	shift := parameter.FanAngleDeg * float64(amount-1) / 2
	for p := 0; p < amount; p++ {
		offset := vmath.DegToRad(parameter.FanAngleDeg*float64(p) - shift)
		vel, err := vmath.Rotate(velocity, offset)
		if err != nil {
			// Unreachable: zero velocity was rejected above
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		e.Particles = append(e.Particles, Particle{
			Life:         life,
			Position:     position,
			Velocity:     vel,
			Acceleration: acceleration,
		})
	}
	return e, nil
}

// Update decrements the emitter life, then moves and ages every particle:
// position += velocity; life -= 1.
//
// Acceleration is NOT applied on this path — only velocity already shaped by
// an earlier UpdateVelocity call moves the particles. UpdateVelocity exists
// as a separate primitive and is never called internally; callers compose
// the four entry points per frame.
func (e *Emitter) Update() {
	e.Life--
	for i := range e.Particles {
		e.Particles[i].AdvancePosition()
		e.Particles[i].AdvanceLife()
	}
}

// UpdateVelocity applies acceleration to every particle's velocity only
func (e *Emitter) UpdateVelocity() {
	for i := range e.Particles {
		e.Particles[i].AdvanceVelocity()
	}
}

// UpdatePosition applies velocity to every particle's position only
func (e *Emitter) UpdatePosition() {
	for i := range e.Particles {
		e.Particles[i].AdvancePosition()
	}
}

// UpdateLife ages every particle by one tick
func (e *Emitter) UpdateLife() {
	for i := range e.Particles {
		e.Particles[i].AdvanceLife()
	}
}

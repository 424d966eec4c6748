// Package particle implements the emitter-driven particle kinematics engine.
package particle

import (
	"github.com/elifdiril/Chaos-Projectile/vmath"
)

// Particle is a single simulated particle. Particles are created by an
// Emitter and mutated in place by it; they have no independent lifecycle.
// Life is a plain counter with no lower bound — removal policy belongs to
// the emitter's owner.
type Particle struct {
	Life         int
	Position     vmath.Vector2
	Velocity     vmath.Vector2
	Acceleration vmath.Vector2
}

// Advance performs one full kinematic step:
// velocity += acceleration; position += velocity; life -= 1.
// No side effects, no allocation.
func (p *Particle) Advance() {
	p.AdvanceVelocity()
	p.AdvancePosition()
	p.AdvanceLife()
}

// AdvanceVelocity applies acceleration to velocity only
func (p *Particle) AdvanceVelocity() {
	p.Velocity = p.Velocity.Add(p.Acceleration)
}

// AdvancePosition applies velocity to position only
func (p *Particle) AdvancePosition() {
	p.Position = p.Position.Add(p.Velocity)
}

// AdvanceLife ages the particle by one tick
func (p *Particle) AdvanceLife() {
	p.Life--
}

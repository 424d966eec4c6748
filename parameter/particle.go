package parameter

// Particle Emitters
const (
	// FanAngleDeg is the angular spacing in degrees between adjacent
	// particle velocities of one emitter
	FanAngleDeg = 30.0

	// AttackParticleAmount is the particle count of a player attack emitter
	AttackParticleAmount = 5

	// AttackParticleLife is the initial life (ticks) shared by an attack
	// emitter and its particles at spawn
	AttackParticleLife = 30

	// AttackParticleSpeed is the initial velocity magnitude (cells per tick)
	// of attack particles
	AttackParticleSpeed = 1.5

	// AttackParticleGravity is the downward acceleration (cells per tick²)
	// baked into attack particles; it only shapes velocity via
	// Emitter.UpdateVelocity, never on the Update path
	AttackParticleGravity = -0.05
)

// Player Movement
const (
	// PlayerSpeed is player displacement per tick while a movement
	// direction is held (cells per tick)
	PlayerSpeed = 1.0
)

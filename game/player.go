// Package game holds the playable-side bus listeners: player movement and
// the attack emitters it owns.
package game

import (
	"github.com/hashicorp/go-multierror"

	"github.com/elifdiril/Chaos-Projectile/events"
	"github.com/elifdiril/Chaos-Projectile/parameter"
	"github.com/elifdiril/Chaos-Projectile/particle"
	"github.com/elifdiril/Chaos-Projectile/vmath"
)

// Player reacts to input events and advances its particle emitters on every
// tick. It produces PlayerMoved, PlayerStoppedMovement and
// UpdateImagePosition on the bus it is registered with.
type Player struct {
	bus *events.Bus

	entityID  int
	position  vmath.Vector2
	direction vmath.Vector2 // pending movement input, consumed next tick
	facing    vmath.Vector2 // last nonzero movement direction, attack heading
	moving    bool          // moved on the previous tick

	emitters []*particle.Emitter
}

// NewPlayer creates a player at position and registers it on the bus
func NewPlayer(bus *events.Bus, entityID int, position vmath.Vector2) *Player {
	p := &Player{
		bus:      bus,
		entityID: entityID,
		position: position,
		facing:   vmath.Vector2{X: 1, Y: 0},
	}
	bus.Register(p)
	return p
}

// Position returns the current player position
func (p *Player) Position() vmath.Vector2 {
	return p.position
}

// Emitters returns the live attack emitters
func (p *Player) Emitters() []*particle.Emitter {
	return p.emitters
}

// Notify handles input and tick events
func (p *Player) Notify(e events.Event) error {
	switch ev := e.(type) {
	case events.HatMoved:
		p.direction = vmath.Vector2{X: float64(ev.X), Y: float64(ev.Y)}

	case events.AxisMoved:
		p.direction = vmath.Vector2{X: ev.XAxis, Y: ev.YAxis}

	case events.MouseButtonDown:
		return p.attack()

	case events.Tick:
		return p.tick()
	}
	return nil
}

// attack spawns a particle fan at the player position along the current
// facing direction
func (p *Player) attack() error {
	e, err := particle.NewEmitter(
		p.position,
		parameter.AttackParticleAmount,
		parameter.AttackParticleLife,
		p.facing.Scale(parameter.AttackParticleSpeed),
		vmath.Vector2{X: 0, Y: parameter.AttackParticleGravity},
	)
	if err != nil {
		// Unreachable with the tuning constants, but the construction
		// contract is fallible and the bus expects the failure back
		return err
	}
	p.emitters = append(p.emitters, e)
	return nil
}

// tick advances movement and emitters for one frame
func (p *Player) tick() error {
	var result *multierror.Error

	if !p.direction.IsZero() {
		p.position = p.position.Add(p.direction.Scale(parameter.PlayerSpeed))
		p.facing = p.direction
		p.direction = vmath.Vector2{}
		p.moving = true

		if err := p.bus.Post(events.PlayerMoved{NewPosition: p.position}); err != nil {
			result = multierror.Append(result, err)
		}
		if err := p.bus.Post(events.UpdateImagePosition{
			EntityID: p.entityID,
			NewX:     int(p.position.X),
			NewY:     int(p.position.Y),
		}); err != nil {
			result = multierror.Append(result, err)
		}
	} else if p.moving {
		p.moving = false
		if err := p.bus.Post(events.PlayerStoppedMovement{}); err != nil {
			result = multierror.Append(result, err)
		}
	}

	// Main per-frame path of the emitters: move and age. Discarding by
	// emitter life is this caller's policy, not the core's.
	live := p.emitters[:0]
	for _, e := range p.emitters {
		e.Update()
		if e.Life > 0 {
			live = append(live, e)
		}
	}
	p.emitters = live

	return result.ErrorOrNil()
}

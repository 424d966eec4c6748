// Package audio plays short synthesized cues in reaction to bus events.
package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/elifdiril/Chaos-Projectile/events"
	"github.com/elifdiril/Chaos-Projectile/parameter"
)

// Cues is a bus listener mapping game events to sine tone bursts.
// When the speaker cannot be initialized (headless terminal, missing audio
// device) it degrades to silence instead of failing.
type Cues struct {
	sampleRate beep.SampleRate
	ready      bool
}

// NewCues initializes the speaker and registers the cue player on the bus.
// A muted or failed speaker yields a silent but functional listener.
func NewCues(bus *events.Bus, mute bool) *Cues {
	c := &Cues{sampleRate: beep.SampleRate(parameter.AudioSampleRate)}
	if !mute {
		if err := speaker.Init(c.sampleRate, c.sampleRate.N(parameter.SpeakerBufferDuration)); err == nil {
			c.ready = true
		}
	}
	bus.Register(c)
	return c
}

// Notify plays the cue mapped to the event, if any
func (c *Cues) Notify(e events.Event) error {
	if !c.ready {
		return nil
	}
	switch e.(type) {
	case events.MouseButtonDown:
		c.play(parameter.AttackCueFreq)
	case events.PlayerStoppedMovement:
		c.play(parameter.StopCueFreq)
	}
	return nil
}

// play emits one fixed-length sine burst
func (c *Cues) play(freq float64) {
	sine, err := generators.SineTone(c.sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(c.sampleRate.N(parameter.CueDuration), sine))
}

// Close releases the speaker
func (c *Cues) Close() {
	if c.ready {
		speaker.Close()
		c.ready = false
	}
}

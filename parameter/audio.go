package parameter

import "time"

// Audio Cues
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AttackCueFreq is the sine frequency (Hz) of the attack cue
	AttackCueFreq = 880

	// StopCueFreq is the sine frequency (Hz) of the movement-stop cue
	StopCueFreq = 440

	// CueDuration is the length of one cue burst
	CueDuration = 50 * time.Millisecond

	// SpeakerBufferDuration sizes the speaker buffer
	SpeakerBufferDuration = time.Second / 10
)

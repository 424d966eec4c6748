package parameter

// Event Plumbing Limits
const (
	// EventQueueSize is the fixed capacity of the input event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

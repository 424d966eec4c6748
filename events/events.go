// Package events provides the closed event catalog and the synchronous
// publish/subscribe bus coordinating the game subsystems.
//
// Events are immutable tagged values: one struct per catalog entry, all
// implementing the sealed Event interface, so dispatch can switch
// exhaustively on the variant instead of inspecting runtime types. No event
// holds a reference back to its source.
package events

import "github.com/elifdiril/Chaos-Projectile/vmath"

// Event is the sealed interface over the event catalog. Only types in this
// package implement it.
type Event interface {
	Type() EventType
	isEvent()
}

// Key is a platform key code as delivered by the input backend
type Key int32

// Tick marks one elapsed simulation step. DT is the time expired since the
// previous tick, in milliseconds.
type Tick struct {
	DT int
}

// ResizeWindow carries the new display surface dimensions
type ResizeWindow struct {
	Width  int
	Height int
}

// Quit requests termination
type Quit struct{}

// KeyPressed carries the pressed key
type KeyPressed struct {
	Key Key
}

// KeyReleased carries the released key
type KeyReleased struct {
	Key Key
}

// MouseMoved carries the new pointer position
type MouseMoved struct {
	X, Y int
}

// MouseButtonDown signals a pointer press (attack intent)
type MouseButtonDown struct{}

// AxisMoved carries an analog stick sample; each axis is in [-1,1] with 0
// centered, bottom-right corner at (1,1)
type AxisMoved struct {
	XAxis, YAxis float64
}

// HatMoved carries a digital stick sample; each axis is -1 (left/down),
// 0 (centered) or 1 (right/up)
type HatMoved struct {
	X, Y int
}

// UpdateImagePosition signals that an entity moved and its image position
// has to be updated
type UpdateImagePosition struct {
	EntityID   int
	NewX, NewY int
}

// PlayerMoved carries the new player position
type PlayerMoved struct {
	NewPosition vmath.Vector2
}

// PlayerStoppedMovement signals the player halted
type PlayerStoppedMovement struct{}

func (Tick) Type() EventType                  { return EventTick }
func (ResizeWindow) Type() EventType          { return EventResizeWindow }
func (Quit) Type() EventType                  { return EventQuit }
func (KeyPressed) Type() EventType            { return EventKeyPressed }
func (KeyReleased) Type() EventType           { return EventKeyReleased }
func (MouseMoved) Type() EventType            { return EventMouseMoved }
func (MouseButtonDown) Type() EventType       { return EventMouseButtonDown }
func (AxisMoved) Type() EventType             { return EventAxisMoved }
func (HatMoved) Type() EventType              { return EventHatMoved }
func (UpdateImagePosition) Type() EventType   { return EventUpdateImagePosition }
func (PlayerMoved) Type() EventType           { return EventPlayerMoved }
func (PlayerStoppedMovement) Type() EventType { return EventPlayerStoppedMovement }

func (Tick) isEvent()                  {}
func (ResizeWindow) isEvent()          {}
func (Quit) isEvent()                  {}
func (KeyPressed) isEvent()            {}
func (KeyReleased) isEvent()           {}
func (MouseMoved) isEvent()            {}
func (MouseButtonDown) isEvent()       {}
func (AxisMoved) isEvent()             {}
func (HatMoved) isEvent()              {}
func (UpdateImagePosition) isEvent()   {}
func (PlayerMoved) isEvent()           {}
func (PlayerStoppedMovement) isEvent() {}

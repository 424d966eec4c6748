package events

// EventType identifies one variant of the closed event catalog
type EventType int

const (
	// EventTick marks one elapsed simulation step
	// Trigger: frame driver, once per frame
	// Consumer: every subsystem advancing per-frame state | Variant: Tick
	EventTick EventType = iota

	// EventResizeWindow signals the display surface was resized
	// Trigger: input adapter on terminal resize
	// Consumer: layout-aware subsystems | Variant: ResizeWindow
	EventResizeWindow

	// EventQuit signals a terminate request
	// Trigger: input adapter (Esc, Ctrl+C)
	// Consumer: frame driver | Variant: Quit
	EventQuit

	// EventKeyPressed carries a keyboard key-down edge
	// Trigger: input adapter
	// Consumer: game logic | Variant: KeyPressed
	EventKeyPressed

	// EventKeyReleased carries a keyboard key-up edge
	// Trigger: input adapter (backends that report releases; terminals do not)
	// Consumer: game logic | Variant: KeyReleased
	EventKeyReleased

	// EventMouseMoved carries a pointer position sample
	// Trigger: input adapter
	// Consumer: game logic | Variant: MouseMoved
	EventMouseMoved

	// EventMouseButtonDown signals a pointer press / attack intent
	// Trigger: input adapter on primary button
	// Consumer: game logic, audio cues | Variant: MouseButtonDown
	EventMouseButtonDown

	// EventAxisMoved carries an analog stick sample in [-1,1] per axis
	// Trigger: input adapter (game-pad backends)
	// Consumer: game logic | Variant: AxisMoved
	EventAxisMoved

	// EventHatMoved carries a digital stick sample in {-1,0,1} per axis
	// Trigger: input adapter (game-pad hat, or arrow keys on terminals)
	// Consumer: game logic | Variant: HatMoved
	EventHatMoved

	// EventUpdateImagePosition requests a visual sync for a moved entity
	// Trigger: game logic
	// Consumer: render boundary | Variant: UpdateImagePosition
	EventUpdateImagePosition

	// EventPlayerMoved signals the player relocated
	// Trigger: game logic
	// Consumer: AI / animation boundary | Variant: PlayerMoved
	EventPlayerMoved

	// EventPlayerStoppedMovement signals the player halted
	// Trigger: game logic
	// Consumer: AI / animation boundary | Variant: PlayerStoppedMovement
	EventPlayerStoppedMovement
)

// String returns the name of the event type for debugging
func (e EventType) String() string {
	switch e {
	case EventTick:
		return "Tick"
	case EventResizeWindow:
		return "ResizeWindow"
	case EventQuit:
		return "Quit"
	case EventKeyPressed:
		return "KeyPressed"
	case EventKeyReleased:
		return "KeyReleased"
	case EventMouseMoved:
		return "MouseMoved"
	case EventMouseButtonDown:
		return "MouseButtonDown"
	case EventAxisMoved:
		return "AxisMoved"
	case EventHatMoved:
		return "HatMoved"
	case EventUpdateImagePosition:
		return "UpdateImagePosition"
	case EventPlayerMoved:
		return "PlayerMoved"
	case EventPlayerStoppedMovement:
		return "PlayerStoppedMovement"
	default:
		return "Unknown"
	}
}

// Package input adapts raw terminal events into domain events on the bus.
//
// A poll goroutine owns the tcell event stream and pushes translated domain
// events into the MPSC queue; the Controller drains the queue when the frame
// driver posts a Tick, so every input event is delivered on the frame thread.
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/elifdiril/Chaos-Projectile/events"
)

// Controller translates terminal events into domain events.
//
// Terminals report no key releases and no analog axes, so EventKeyReleased
// and EventAxisMoved stay in the catalog but are never produced here; arrow
// keys stand in for the digital game-pad hat.
type Controller struct {
	bus   *events.Bus
	queue *events.Queue

	// buttons is the last seen mouse button mask, used for press edge
	// detection. Touched only by the poll goroutine.
	buttons tcell.ButtonMask
}

// NewController creates a controller posting to bus through queue and
// registers it as a bus listener
func NewController(bus *events.Bus, queue *events.Queue) *Controller {
	c := &Controller{bus: bus, queue: queue}
	bus.Register(c)
	return c
}

// Notify drains pending translated input on every Tick and re-posts it on
// the bus. Other event types are ignored.
func (c *Controller) Notify(e events.Event) error {
	if _, ok := e.(events.Tick); !ok {
		return nil
	}
	for _, ev := range c.queue.Consume() {
		// Delivery failures of downstream listeners surface to the
		// frame driver through its own Post call, not through Tick
		// handling; input must keep flowing regardless.
		_ = c.bus.Post(ev)
	}
	return nil
}

// Poll reads terminal events until the screen is finalized, translating each
// into domain events on the queue. Run it on its own goroutine.
func (c *Controller) Poll(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}
		for _, out := range c.translate(ev) {
			c.queue.Push(out)
		}
	}
}

// translate maps one terminal event to zero or more domain events
func (c *Controller) translate(ev tcell.Event) []events.Event {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		w, h := tev.Size()
		return []events.Event{events.ResizeWindow{Width: w, Height: h}}

	case *tcell.EventKey:
		return translateKey(tev)

	case *tcell.EventMouse:
		return c.translateMouse(tev)
	}
	return nil
}

func translateKey(ev *tcell.EventKey) []events.Event {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return []events.Event{events.Quit{}}

	// Arrow keys double as the digital stick: positive y is up
	case tcell.KeyUp:
		return []events.Event{events.HatMoved{X: 0, Y: 1}}
	case tcell.KeyDown:
		return []events.Event{events.HatMoved{X: 0, Y: -1}}
	case tcell.KeyLeft:
		return []events.Event{events.HatMoved{X: -1, Y: 0}}
	case tcell.KeyRight:
		return []events.Event{events.HatMoved{X: 1, Y: 0}}

	case tcell.KeyRune:
		return []events.Event{events.KeyPressed{Key: events.Key(ev.Rune())}}
	}
	return []events.Event{events.KeyPressed{Key: events.Key(ev.Key())}}
}

func (c *Controller) translateMouse(ev *tcell.EventMouse) []events.Event {
	x, y := ev.Position()
	out := []events.Event{events.MouseMoved{X: x, Y: y}}

	pressed := ev.Buttons() &^ c.buttons
	c.buttons = ev.Buttons()
	if pressed&tcell.Button1 != 0 {
		out = append(out, events.MouseButtonDown{})
	}
	return out
}

package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gdamore/tcell/v2"

	"github.com/elifdiril/Chaos-Projectile/audio"
	"github.com/elifdiril/Chaos-Projectile/events"
	"github.com/elifdiril/Chaos-Projectile/game"
	"github.com/elifdiril/Chaos-Projectile/input"
	"github.com/elifdiril/Chaos-Projectile/vmath"
)

// config holds the operator-facing knobs, read from the environment
type config struct {
	// FrameMS is the frame driver interval in milliseconds
	FrameMS int `env:"CHAOS_FRAME_MS" envDefault:"16"`
	// Mute disables audio cues
	Mute bool `env:"CHAOS_MUTE" envDefault:"false"`
	// Debug enables file logging under logs/
	Debug bool `env:"CHAOS_DEBUG" envDefault:"false"`
}

const playerEntityID = 1

// quitListener flags the frame loop down when a Quit event arrives
type quitListener struct {
	once sync.Once
	done chan struct{}
}

func newQuitListener(bus *events.Bus) *quitListener {
	q := &quitListener{done: make(chan struct{})}
	bus.Register(q)
	return q
}

func (q *quitListener) Notify(e events.Event) error {
	if _, ok := e.(events.Quit); ok {
		q.once.Do(func() { close(q.done) })
	}
	return nil
}

func main() {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse environment: %v\n", err)
		os.Exit(1)
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()

	// Panic recovery: restore the terminal before the stack trace hits stderr
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nCHAOS-PROJECTILE CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	bus := events.NewBus()
	queue := events.NewQueue()

	controller := input.NewController(bus, queue)
	go controller.Poll(screen)

	w, h := screen.Size()
	game.NewPlayer(bus, playerEntityID, vmath.Vector2{X: float64(w) / 2, Y: float64(h) / 2})

	cues := audio.NewCues(bus, cfg.Mute)
	defer cues.Close()

	quit := newQuitListener(bus)

	run(bus, quit.done, time.Duration(cfg.FrameMS)*time.Millisecond)
}

// run drives the frame loop: one Tick per interval, each fully delivered
// before the next begins
func run(bus *events.Bus, done <-chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-done:
			return
		case now := <-ticker.C:
			dt := int(now.Sub(last).Milliseconds())
			last = now
			if err := bus.Post(events.Tick{DT: dt}); err != nil {
				log.Printf("tick delivery: %v", err)
			}
		}
	}
}

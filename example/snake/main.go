// Command snake is a terminal snake game built on an ecc bucket.
//
// Steer with WASD or the arrow keys, quit with q or Esc.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
)

var (
	width  = flag.Int("width", 32, "Board width in cells")
	height = flag.Int("height", 16, "Board height in cells")
	tick   = flag.Duration("tick", 120*time.Millisecond, "Time between snake steps")
	seed   = flag.Uint64("seed", uint64(time.Now().UnixNano()), "Apple placement seed")
)

func main() {
	flag.Parse()

	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Seed = *width, *height, *seed
	g, err := NewGame(cfg)
	if err != nil {
		log.Fatalf("snake: %v", err)
	}
	err = play(g, tcell.NewScreen, *tick)
	g.Close()
	if err != nil {
		log.Fatalf("snake: %v", err)
	}
	log.Printf("Game over! Final score: %d", g.State().Score)
}

// play opens a terminal screen, runs g on it and restores the terminal
// before returning.
func play(g *Game, open func() (tcell.Screen, error), step time.Duration) error {
	screen, err := open()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	return run(g, screen, step)
}

// run drives the game until the player quits or the snake dies.
func run(g *Game, screen tcell.Screen, step time.Duration) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(step)
	defer ticker.Stop()

	renderSystem(g, screen)
	screen.Show()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !handleEvent(g, screen, ev) {
				return nil
			}
		case <-ticker.C:
			if err := g.Tick(); err != nil {
				return err
			}
			renderSystem(g, screen)
			screen.Show()
			if g.State().Mode == Over {
				// Leave the final board up briefly.
				time.Sleep(2 * time.Second)
				return nil
			}
		}
	}
}

// handleEvent applies one terminal event and reports whether the game loop
// should continue.
func handleEvent(g *Game, screen tcell.Screen, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			g.Steer(headingUp)
		case tcell.KeyDown:
			g.Steer(headingDown)
		case tcell.KeyLeft:
			g.Steer(headingLeft)
		case tcell.KeyRight:
			g.Steer(headingRight)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'w':
				g.Steer(headingUp)
			case 's':
				g.Steer(headingDown)
			case 'a':
				g.Steer(headingLeft)
			case 'd':
				g.Steer(headingRight)
			}
		}
	}
	return true
}

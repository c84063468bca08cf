package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/Evankj/ecc"
)

// Mode is the phase the game is in.
type Mode int

const (
	Running Mode = iota
	Over
)

// Config sizes a game. The board is Width x Height cells.
type Config struct {
	Width, Height int
	ArenaBytes    int
	Seed          uint64
}

// DefaultConfig is a 32x16 board, the size of the classic layout.
func DefaultConfig() Config {
	return Config{Width: 32, Height: 16, ArenaBytes: 1 << 20, Seed: 1}
}

// GameState is stored as a bucket resource and read by every system.
type GameState struct {
	Mode    Mode
	Score   int
	Length  int
	Width   int
	Height  int
	Head    ecc.Entity
	Apple   ecc.Entity
	TailTip ecc.Entity
}

// AppleEaten is published on the bucket's event bus when the head reaches
// the apple.
type AppleEaten struct {
	Score int
}

// GameOver is published once, on the tick the snake dies.
type GameOver struct {
	Score  int
	Reason string
}

// Game owns the arena and bucket holding every snake segment and the apple.
type Game struct {
	arena  *ecc.Arena
	bucket *ecc.Bucket
	comps  components
	rng    *rand.Rand
	state  *GameState

	segments  ecc.Query // every snake node, head included
	drawables ecc.Query
	steerable ecc.Query
	eaters    ecc.Query
	apples    ecc.Query

	reason string
}

// NewGame builds the initial board: a one-segment snake in the middle and
// one apple.
func NewGame(cfg Config) (*Game, error) {
	if cfg.Width <= 2 || cfg.Height <= 2 {
		return nil, fmt.Errorf("board %dx%d is too small", cfg.Width, cfg.Height)
	}
	arena, err := ecc.NewArena(cfg.ArenaBytes)
	if err != nil {
		return nil, err
	}
	// Every cell may hold a segment, plus the apple.
	bucket, err := ecc.NewBucket(arena, cfg.Width*cfg.Height+1)
	if err != nil {
		arena.Destroy()
		return nil, err
	}
	comps, err := registerComponents(bucket)
	if err != nil {
		arena.Destroy()
		return nil, err
	}

	g := &Game{
		arena:  arena,
		bucket: bucket,
		comps:  comps,
		rng:    rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		state:  &GameState{Width: cfg.Width, Height: cfg.Height},
	}
	q := bucket.Query()
	g.segments = q.With(comps.node.ComponentType).With(comps.grid.ComponentType)
	g.drawables = q.With(comps.sprite.ComponentType).With(comps.grid.ComponentType)
	g.steerable = q.With(comps.input.ComponentType).With(comps.direction.ComponentType)
	g.eaters = q.With(comps.eater.ComponentType).With(comps.grid.ComponentType)
	g.apples = q.With(comps.apple.ComponentType).Without(comps.node.ComponentType)

	if err := ecc.AddResource(bucket.Resources(), g.state); err != nil {
		arena.Destroy()
		return nil, err
	}
	ecc.Subscribe(bucket.Events(), func(ev ecc.ComponentAdded) {
		if ev.Type == comps.node.ComponentType {
			g.state.Length++
		}
	})
	ecc.Subscribe(bucket.Events(), func(ev AppleEaten) {
		g.state.Score = ev.Score
	})
	ecc.Subscribe(bucket.Events(), func(ev GameOver) {
		g.state.Mode = Over
		g.reason = ev.Reason
	})

	if err := g.spawnHead(Cell{X: int32(cfg.Width / 2), Y: int32(cfg.Height / 2)}); err != nil {
		arena.Destroy()
		return nil, err
	}
	if err := g.spawnApple(); err != nil {
		arena.Destroy()
		return nil, err
	}
	return g, nil
}

// State returns the live game state.
func (g *Game) State() *GameState {
	st, _ := ecc.GetResource[GameState](g.bucket.Resources())
	return st
}

// Close releases the arena. The game must not be used afterwards.
func (g *Game) Close() {
	g.arena.Destroy()
}

func (g *Game) spawnHead(at Cell) error {
	b, c := g.bucket, g.comps
	e, err := b.CreateEntity()
	if err != nil {
		return err
	}
	g.state.Head = e
	g.state.TailTip = e
	for _, err := range []error{
		c.head.Set(b, e, SnakeHead{}),
		c.eater.Set(b, e, AppleEater{}),
		c.input.Set(b, e, Input{}),
		c.direction.Set(b, e, Direction{}),
		c.grid.Set(b, e, GridPosition{Cur: at, Last: at}),
		c.sprite.Set(b, e, Sprite{Glyph: '@', Color: colorHead}),
		c.node.Set(b, e, SnakeNode{Next: -1}),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) spawnApple() error {
	b, c := g.bucket, g.comps
	e, err := b.CreateEntity()
	if err != nil {
		return err
	}
	g.state.Apple = e
	if err := c.apple.Set(b, e, Apple{}); err != nil {
		return err
	}
	if err := c.sprite.Set(b, e, Sprite{Glyph: '*', Color: colorApple}); err != nil {
		return err
	}
	at := g.freeCell()
	return c.grid.Set(b, e, GridPosition{Cur: at, Last: at})
}

// growTail links a new segment behind the current tail tip, on the cell the
// tip just left.
func (g *Game) growTail() error {
	b, c := g.bucket, g.comps
	tip, ok := c.grid.Get(b, g.state.TailTip)
	if !ok {
		return fmt.Errorf("tail tip %d has no grid position", g.state.TailTip)
	}
	e, err := b.CreateEntity()
	if err != nil {
		return err
	}
	if err := c.node.Set(b, e, SnakeNode{Next: int32(g.state.TailTip)}); err != nil {
		return err
	}
	if err := c.grid.Set(b, e, GridPosition{Cur: tip.Last, Last: tip.Last}); err != nil {
		return err
	}
	if err := c.sprite.Set(b, e, Sprite{Glyph: 'o', Color: colorBody}); err != nil {
		return err
	}
	g.state.TailTip = e
	return nil
}

// placeApple moves the apple to at.
func (g *Game) placeApple(at Cell) {
	_ = g.comps.grid.Set(g.bucket, g.state.Apple, GridPosition{Cur: at, Last: at})
}

// freeCell picks a random cell not covered by the snake. It falls back to
// the origin when the board is full.
func (g *Game) freeCell() Cell {
	w, h := g.state.Width, g.state.Height
	for range w * h {
		cell := Cell{X: int32(g.rng.IntN(w)), Y: int32(g.rng.IntN(h))}
		if !g.occupied(cell) {
			return cell
		}
	}
	return Cell{}
}

func (g *Game) occupied(cell Cell) bool {
	hit := false
	g.bucket.Each(g.segments, func(e ecc.Entity) bool {
		pos, _ := g.comps.grid.Get(g.bucket, e)
		hit = pos.Cur == cell
		return !hit
	})
	return hit
}

// Steer records a heading request for the next tick.
func (g *Game) Steer(heading uint8) {
	inputSystem(g, heading)
}

// Tick advances the game by one step. It does nothing once the game is over.
func (g *Game) Tick() error {
	if g.state.Mode != Running {
		return nil
	}
	setDirectionSystem(g)
	if !moving(g) {
		return nil
	}
	tailMovementSystem(g)
	headMovementSystem(g)
	collisionSystem(g)
	if g.state.Mode != Running {
		return nil
	}
	return appleEaterSystem(g)
}

func moving(g *Game) bool {
	d, _ := g.comps.direction.Get(g.bucket, g.state.Head)
	return d.DX != 0 || d.DY != 0
}

package main

import (
	"fmt"

	"github.com/Evankj/ecc"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// boardTop is the screen row of the first board row; row 0 is the HUD.
const boardTop = 1

var spriteColors = [...]tcell.Color{
	colorHead:  tcell.ColorGreen,
	colorBody:  tcell.ColorBlue,
	colorApple: tcell.ColorRed,
}

// inputSystem stores heading on every steerable entity unless it would turn
// the snake straight back onto itself.
func inputSystem(g *Game, heading uint8) {
	b, c := g.bucket, g.comps
	b.Each(g.steerable, func(e ecc.Entity) bool {
		dir, _ := c.direction.Get(b, e)
		if reverses(heading, dir) {
			return true
		}
		_ = c.input.Set(b, e, Input{Heading: heading})
		return true
	})
}

func reverses(heading uint8, d Direction) bool {
	switch heading {
	case headingUp:
		return d.DY == 1
	case headingDown:
		return d.DY == -1
	case headingLeft:
		return d.DX == 1
	case headingRight:
		return d.DX == -1
	}
	return false
}

func setDirectionSystem(g *Game) {
	b, c := g.bucket, g.comps
	b.Each(g.steerable, func(e ecc.Entity) bool {
		in, _ := c.input.Get(b, e)
		var d Direction
		switch in.Heading {
		case headingUp:
			d = Direction{DY: -1}
		case headingDown:
			d = Direction{DY: 1}
		case headingLeft:
			d = Direction{DX: -1}
		case headingRight:
			d = Direction{DX: 1}
		default:
			return true
		}
		_ = c.direction.Set(b, e, d)
		return true
	})
}

// tailMovementSystem walks from the tail tip towards the head, moving every
// segment onto the cell of the one in front. It runs before the head moves.
func tailMovementSystem(g *Game) {
	b, c := g.bucket, g.comps
	e := g.state.TailTip
	for {
		node, ok := c.node.Get(b, e)
		if !ok || node.Next < 0 {
			return
		}
		next := ecc.Entity(node.Next)
		pos, _ := c.grid.Get(b, e)
		ahead, _ := c.grid.Get(b, next)
		pos.Last = pos.Cur
		pos.Cur = ahead.Cur
		_ = c.grid.Set(b, e, pos)
		e = next
	}
}

func headMovementSystem(g *Game) {
	b, c := g.bucket, g.comps
	q := b.Query().With(c.head.ComponentType).With(c.direction.ComponentType).With(c.grid.ComponentType)
	b.Each(q, func(e ecc.Entity) bool {
		d, _ := c.direction.Get(b, e)
		pos, _ := c.grid.Get(b, e)
		pos.Last = pos.Cur
		pos.Cur.X += d.DX
		pos.Cur.Y += d.DY
		_ = c.grid.Set(b, e, pos)
		return true
	})
}

func collisionSystem(g *Game) {
	b, c := g.bucket, g.comps
	head, ok := c.grid.Get(b, g.state.Head)
	if !ok {
		return
	}
	cur := head.Cur
	if cur.X < 0 || cur.Y < 0 || int(cur.X) >= g.state.Width || int(cur.Y) >= g.state.Height {
		ecc.Publish(b.Events(), GameOver{Score: g.state.Score, Reason: "hit the wall"})
		return
	}
	bitten := false
	b.Each(g.segments.Without(c.head.ComponentType), func(e ecc.Entity) bool {
		pos, _ := c.grid.Get(b, e)
		bitten = pos.Cur == cur
		return !bitten
	})
	if bitten {
		ecc.Publish(b.Events(), GameOver{Score: g.state.Score, Reason: "ate its own tail"})
	}
}

func appleEaterSystem(g *Game) error {
	b, c := g.bucket, g.comps
	var eaten []ecc.Entity
	b.Each(g.eaters, func(e ecc.Entity) bool {
		pos, _ := c.grid.Get(b, e)
		b.Each(g.apples, func(a ecc.Entity) bool {
			apple, _ := c.grid.Get(b, a)
			if apple.Cur == pos.Cur {
				eaten = append(eaten, a)
			}
			return true
		})
		return true
	})
	for _, a := range eaten {
		if err := g.growTail(); err != nil {
			return err
		}
		ecc.Publish(b.Events(), AppleEaten{Score: g.state.Score + 1})
		at := g.freeCell()
		_ = c.grid.Set(b, a, GridPosition{Cur: at, Last: at})
	}
	return nil
}

// renderSystem draws the HUD and every drawable entity. It does not call
// Show.
func renderSystem(g *Game, screen tcell.Screen) {
	b, c := g.bucket, g.comps
	screen.Clear()

	hud := fmt.Sprintf("Score: %d  Length: %d", g.state.Score, g.state.Length)
	if g.state.Mode == Over {
		hud = fmt.Sprintf("Game over, the snake %s! Score: %d", g.reason, g.state.Score)
	}
	putText(screen, centered(hud, g.state.Width), 0, hud, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))

	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := range g.state.Width {
		screen.SetContent(x, boardTop+g.state.Height, '─', nil, border)
	}

	b.Each(g.drawables, func(e ecc.Entity) bool {
		sprite, _ := c.sprite.Get(b, e)
		pos, _ := c.grid.Get(b, e)
		if pos.Cur.X < 0 || pos.Cur.Y < 0 || int(pos.Cur.X) >= g.state.Width || int(pos.Cur.Y) >= g.state.Height {
			return true
		}
		style := tcell.StyleDefault.Foreground(spriteColors[sprite.Color])
		screen.SetContent(int(pos.Cur.X), boardTop+int(pos.Cur.Y), sprite.Glyph, nil, style)
		return true
	})
}

// centered returns the column at which s is centred over width columns.
func centered(s string, width int) int {
	x := (width - runewidth.StringWidth(s)) / 2
	return max(x, 0)
}

// putText writes s starting at (x, y), advancing by each rune's display
// width. It stops at the right edge of the screen.
func putText(screen tcell.Screen, x, y int, s string, st tcell.Style) {
	sw, _ := screen.Size()
	for _, r := range s {
		if x >= sw {
			break
		}
		screen.SetContent(x, y, r, nil, st)
		x += runewidth.RuneWidth(r)
	}
}

package main

import "github.com/Evankj/ecc"

// Cell is a grid coordinate.
type Cell struct {
	X, Y int32
}

// GridPosition is where an entity is drawn this tick and where it was the
// tick before.
type GridPosition struct {
	Cur, Last Cell
}

// Direction is the per-tick head step.
type Direction struct {
	DX, DY int32
}

// Heading values held by Input.
const (
	headingNone uint8 = iota
	headingUp
	headingDown
	headingLeft
	headingRight
)

// Input holds the last heading requested from the keyboard.
type Input struct {
	Heading uint8
}

// SnakeNode links a body segment to the segment in front of it. Next is an
// entity index, or -1 on the head.
type SnakeNode struct {
	Next int32
}

// Sprite is how an entity is drawn.
type Sprite struct {
	Glyph rune
	Color uint8
}

// Sprite colors.
const (
	colorHead uint8 = iota
	colorBody
	colorApple
)

// Tags.
type (
	SnakeHead  struct{}
	Apple      struct{}
	AppleEater struct{}
)

// components holds the handle of every registered component type.
type components struct {
	grid      ecc.Component[GridPosition]
	direction ecc.Component[Direction]
	input     ecc.Component[Input]
	node      ecc.Component[SnakeNode]
	sprite    ecc.Component[Sprite]
	head      ecc.Component[SnakeHead]
	apple     ecc.Component[Apple]
	eater     ecc.Component[AppleEater]
}

func registerComponents(b *ecc.Bucket) (c components, err error) {
	if c.grid, err = ecc.RegisterComponent[GridPosition](b); err != nil {
		return c, err
	}
	if c.direction, err = ecc.RegisterComponent[Direction](b); err != nil {
		return c, err
	}
	if c.input, err = ecc.RegisterComponent[Input](b); err != nil {
		return c, err
	}
	if c.node, err = ecc.RegisterComponent[SnakeNode](b); err != nil {
		return c, err
	}
	if c.sprite, err = ecc.RegisterComponent[Sprite](b); err != nil {
		return c, err
	}
	if c.head, err = ecc.RegisterComponent[SnakeHead](b); err != nil {
		return c, err
	}
	if c.apple, err = ecc.RegisterComponent[Apple](b); err != nil {
		return c, err
	}
	if c.eater, err = ecc.RegisterComponent[AppleEater](b); err != nil {
		return c, err
	}
	return c, nil
}

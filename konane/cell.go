package konane

import "fmt"

type Color byte

const (
	NoColor Color = 0
	Black   Color = 1
	White   Color = 2
)

// Flip returns the opposing color. NoColor flips to itself.
func (c Color) Flip() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return NoColor
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	case NoColor:
		return "none"
	default:
		panic(fmt.Sprintf("bad color: %x", int(c)))
	}
}

// Tint is a display hint attached to a cell. Nothing in the rules or the
// search looks at it.
type Tint byte

const (
	TintNone Tint = iota
	TintHighlight
)

type Cell struct {
	Piece Color
	Tint  Tint

	Row, Col int
}

func (c Cell) Empty() bool {
	return c.Piece == NoColor
}

type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

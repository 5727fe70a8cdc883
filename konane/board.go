package konane

import (
	"errors"
	"fmt"

	"github.com/konanebot/konane/bitboard"
)

const (
	MinSize = 4
	MaxSize = 8
)

var (
	ErrUnsupportedSize = fmt.Errorf("board size must be between %d and %d", MinSize, MaxSize)
	ErrShape           = errors.New("board is not square")
)

type Phase byte

const (
	// OpeningFirst: the board is full and the first player must
	// remove one of their own pieces.
	OpeningFirst Phase = iota
	// OpeningSecond: exactly one cell is empty and the second player
	// removes a piece next to it.
	OpeningSecond
	Midgame
)

func (p Phase) String() string {
	switch p {
	case OpeningFirst:
		return "opening-first"
	case OpeningSecond:
		return "opening-second"
	case Midgame:
		return "midgame"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

func (p Phase) next() Phase {
	if p == Midgame {
		return Midgame
	}
	return p + 1
}

// Board is an immutable Konane position. Boards are only ever produced
// by the constructors in this package and by NextBoard; none of the
// exported methods modify the receiver.
type Board struct {
	c     *bitboard.Constants
	cells []Cell
	phase Phase

	analysis Analysis
}

// Analysis holds occupancy bitboards derived from the cells.
type Analysis struct {
	Black uint64
	White uint64
}

// Key is the canonical, comparable encoding of a board's occupancy.
type Key struct {
	Size         uint8
	Black, White uint64
}

var constants [MaxSize + 1]bitboard.Constants

func init() {
	for s := MinSize; s <= MaxSize; s++ {
		constants[s] = bitboard.Precompute(uint(s))
	}
}

func alloc(size int) *Board {
	b := &Board{
		c:     &constants[size],
		cells: make([]Cell, size*size),
	}
	for i := range b.cells {
		b.cells[i].Row = i / size
		b.cells[i].Col = i % size
	}
	return b
}

// FromSquares builds a board from a slice of rows, top row first. The
// opening phase is derived from the number of empty cells.
func FromSquares(rows [][]Color) (*Board, error) {
	size := len(rows)
	if size < MinSize || size > MaxSize {
		return nil, ErrUnsupportedSize
	}
	b := alloc(size)
	for r, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrShape, r, len(row))
		}
		for c, piece := range row {
			switch piece {
			case NoColor, Black, White:
			default:
				return nil, fmt.Errorf("bad piece at (%d,%d): %x", r, c, int(piece))
			}
			b.cells[r*size+c].Piece = piece
		}
	}
	b.analyze()
	switch b.Count(NoColor) {
	case 0:
		b.phase = OpeningFirst
	case 1:
		b.phase = OpeningSecond
	default:
		b.phase = Midgame
	}
	return b, nil
}

func (b *Board) Size() int {
	return int(b.c.Size)
}

func (b *Board) At(row, col int) Cell {
	return b.cells[row*b.Size()+col]
}

func (b *Board) set(row, col int, piece Color) {
	b.cells[row*b.Size()+col].Piece = piece
}

// Rows returns a copy of the occupancy, top row first.
func (b *Board) Rows() [][]Color {
	out := make([][]Color, b.Size())
	for r := range out {
		out[r] = make([]Color, b.Size())
		for c := range out[r] {
			out[r][c] = b.At(r, c).Piece
		}
	}
	return out
}

func (b *Board) Phase() Phase {
	return b.phase
}

func (b *Board) Analysis() *Analysis {
	return &b.analysis
}

func (b *Board) Constants() *bitboard.Constants {
	return b.c
}

func (b *Board) Key() Key {
	return Key{
		Size:  uint8(b.c.Size),
		Black: b.analysis.Black,
		White: b.analysis.White,
	}
}

func (b *Board) Valid(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.Size() && col < b.Size()
}

func (b *Board) Contains(row, col int, piece Color) bool {
	return b.Valid(row, col) && b.At(row, col).Piece == piece
}

func (b *Board) Count(piece Color) int {
	switch piece {
	case Black:
		return bitboard.Popcount(b.analysis.Black)
	case White:
		return bitboard.Popcount(b.analysis.White)
	}
	return len(b.cells) - bitboard.Popcount(b.analysis.Black|b.analysis.White)
}

// IsOpeningPhase is true while at most one cell is empty.
func (b *Board) IsOpeningPhase() bool {
	return b.phase != Midgame
}

func (b *Board) bits(piece Color) uint64 {
	switch piece {
	case Black:
		return b.analysis.Black
	case White:
		return b.analysis.White
	}
	return b.c.Mask &^ (b.analysis.Black | b.analysis.White)
}

// ConnectedGroups partitions the cells holding piece into maximal
// groups of orthogonally adjacent cells.
func (b *Board) ConnectedGroups(piece Color) [][]Coord {
	var out [][]Coord
	for _, g := range bitboard.FloodGroups(b.c, b.bits(piece), nil) {
		group := make([]Coord, 0, bitboard.Popcount(g))
		bitboard.Each(g, func(bit uint64) {
			r, c := b.c.Coords(bit)
			group = append(group, Coord{r, c})
		})
		out = append(out, group)
	}
	return out
}

// GroupCount is len(b.ConnectedGroups(piece)) without materializing
// the coordinates.
func (b *Board) GroupCount(piece Color) int {
	return len(bitboard.FloodGroups(b.c, b.bits(piece), make([]uint64, 0, 8)))
}

// WithTint returns a copy of b with the given cells tinted. Occupancy
// and phase are unchanged.
func (b *Board) WithTint(t Tint, coords []Coord) *Board {
	next := b.clone()
	for _, rc := range coords {
		if b.Valid(rc.Row, rc.Col) {
			next.cells[rc.Row*b.Size()+rc.Col].Tint = t
		}
	}
	return next
}

// Equal compares occupancy, phase and tints.
func (b *Board) Equal(o *Board) bool {
	if b.Size() != o.Size() || b.phase != o.phase {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

func (b *Board) clone() *Board {
	next := &Board{
		c:        b.c,
		cells:    make([]Cell, len(b.cells)),
		phase:    b.phase,
		analysis: b.analysis,
	}
	copy(next.cells, b.cells)
	return next
}

func (b *Board) analyze() {
	var black, white uint64
	for i, cell := range b.cells {
		switch cell.Piece {
		case Black:
			black |= 1 << uint(i)
		case White:
			white |= 1 << uint(i)
		}
	}
	b.analysis.Black = black
	b.analysis.White = white
}

// Package bitboard implements occupancy sets for boards of up to 8x8
// cells. Bit i corresponds to row i/Size, column i%Size; row 0 is the
// top of the board.
package bitboard

import "math/bits"

type Constants struct {
	Size uint

	// First and last column, first and last row.
	Left, Right, Top, Bottom uint64

	Corners uint64
	Mask    uint64
}

func Precompute(size uint) Constants {
	var c Constants
	for i := uint(0); i < size; i++ {
		c.Left |= 1 << (i * size)
	}
	c.Size = size
	c.Right = c.Left << (size - 1)
	c.Top = (1 << size) - 1
	c.Bottom = c.Top << (size * (size - 1))
	if size == 8 {
		c.Mask = ^uint64(0)
	} else {
		c.Mask = 1<<(size*size) - 1
	}
	c.Corners = (c.Top | c.Bottom) & (c.Left | c.Right)
	return c
}

func (c *Constants) Index(row, col int) uint {
	return uint(row)*c.Size + uint(col)
}

func (c *Constants) Bit(row, col int) uint64 {
	return 1 << c.Index(row, col)
}

// Coords returns the row and column of a single set bit.
func (c *Constants) Coords(bit uint64) (row, col int) {
	if bit == 0 || bit&(bit-1) != 0 {
		panic("Coords: non-singular")
	}
	n := uint(bits.TrailingZeros64(bit))
	return int(n / c.Size), int(n % c.Size)
}

// Flood grows seed through 4-adjacent cells of within until it stops
// changing. Each Grow step adds one breadth-first layer.
func Flood(c *Constants, within uint64, seed uint64) uint64 {
	for {
		next := Grow(c, within, seed)
		if next == seed {
			return next
		}
		seed = next
	}
}

func Grow(c *Constants, within uint64, seed uint64) uint64 {
	next := seed
	next |= (seed << 1) &^ c.Left
	next |= (seed >> 1) &^ c.Right
	next |= seed >> c.Size
	next |= seed << c.Size
	return next & within
}

// FloodGroups partitions bits into maximal 4-connected groups, appending
// them to out in order of their lowest cell. Isolated cells form their
// own group.
func FloodGroups(c *Constants, bits uint64, out []uint64) []uint64 {
	var seen uint64
	for bits != 0 {
		next := bits & (bits - 1)
		bit := bits &^ next

		if seen&bit == 0 {
			g := Flood(c, bits, bit)
			out = append(out, g)
			seen |= g
		}

		bits = next
	}
	return out
}

func Popcount(x uint64) int {
	return bits.OnesCount64(x)
}

// Each calls fn with every set bit of x, lowest first.
func Each(x uint64, fn func(bit uint64)) {
	for x != 0 {
		next := x & (x - 1)
		fn(x &^ next)
		x = next
	}
}

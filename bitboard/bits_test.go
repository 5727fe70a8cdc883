package bitboard

import (
	"strconv"
	"testing"
)

func TestPrecompute(t *testing.T) {
	c := Precompute(5)
	if c.Top != (1<<5)-1 {
		t.Error("c.top(5):", strconv.FormatUint(c.Top, 2))
	}
	if c.Bottom != ((1<<5)-1)<<(4*5) {
		t.Error("c.bottom(5):", strconv.FormatUint(c.Bottom, 2))
	}
	if c.Left != 0x0108421 {
		t.Error("c.left(5):", strconv.FormatUint(c.Left, 2))
	}
	if c.Right != 0x1084210 {
		t.Error("c.right(5):", strconv.FormatUint(c.Right, 2))
	}
	if c.Mask != 0x1ffffff {
		t.Error("c.mask(5):", strconv.FormatUint(c.Mask, 2))
	}
	if c.Corners != 0x1100011 {
		t.Error("c.corners(5):", strconv.FormatUint(c.Corners, 2))
	}

	c = Precompute(8)
	if c.Top != (1<<8)-1 {
		t.Error("c.top(8):", strconv.FormatUint(c.Top, 2))
	}
	if c.Bottom != ((1<<8)-1)<<(7*8) {
		t.Error("c.bottom(8):", strconv.FormatUint(c.Bottom, 2))
	}
	if c.Left != 0x101010101010101 {
		t.Error("c.left(8):", strconv.FormatUint(c.Left, 2))
	}
	if c.Right != 0x8080808080808080 {
		t.Error("c.right(8):", strconv.FormatUint(c.Right, 2))
	}
	if c.Mask != ^uint64(0) {
		t.Error("c.mask(8):", strconv.FormatUint(c.Mask, 2))
	}
}

func TestFlood(t *testing.T) {
	cases := []struct {
		size  uint
		bound uint64
		seed  uint64
		out   uint64
	}{
		{
			5,
			0x108423c,
			0x4,
			0x108421c,
		},
		{
			4,
			// row 0: cols 0,1; row 1: col 3
			0x83,
			0x1,
			0x3,
		},
	}
	for _, tc := range cases {
		c := Precompute(tc.size)
		got := Flood(&c, tc.bound, tc.seed)
		if got != tc.out {
			t.Errorf("Flood[%d](%s, %s)=%s !=%s",
				tc.size,
				strconv.FormatUint(tc.bound, 2),
				strconv.FormatUint(tc.seed, 2),
				strconv.FormatUint(got, 2),
				strconv.FormatUint(tc.out, 2))
		}
	}
}

func TestFloodGroups(t *testing.T) {
	c := Precompute(4)
	// .xx.
	// x..x
	// x...
	// ...x
	bits := c.Bit(0, 1) | c.Bit(0, 2) | c.Bit(1, 0) | c.Bit(2, 0) | c.Bit(1, 3) | c.Bit(3, 3)
	gs := FloodGroups(&c, bits, nil)
	want := []uint64{
		c.Bit(0, 1) | c.Bit(0, 2),
		c.Bit(1, 0) | c.Bit(2, 0),
		c.Bit(1, 3),
		c.Bit(3, 3),
	}
	if len(gs) != len(want) {
		t.Fatalf("groups=%d want %d", len(gs), len(want))
	}
	for i := range want {
		if gs[i] != want[i] {
			t.Errorf("group[%d]=%x want %x", i, gs[i], want[i])
		}
	}
}

func TestCoords(t *testing.T) {
	c := Precompute(6)
	for _, rc := range [][2]int{{0, 0}, {5, 5}, {2, 3}, {4, 0}} {
		r, col := c.Coords(c.Bit(rc[0], rc[1]))
		if r != rc[0] || col != rc[1] {
			t.Errorf("Coords(Bit(%d,%d)) = (%d,%d)", rc[0], rc[1], r, col)
		}
	}
}

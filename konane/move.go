package konane

import (
	"errors"
	"fmt"
)

// Move is a jump from (R1,C1) to (R2,C2) along a row or column,
// possibly over several opponent pieces. A move whose endpoints
// coincide removes the mover's own piece; it is only legal during the
// opening.
type Move struct {
	R1, C1, R2, C2 int8
}

func Removal(row, col int) Move {
	return Move{int8(row), int8(col), int8(row), int8(col)}
}

func Jump(r1, c1, r2, c2 int) Move {
	return Move{int8(r1), int8(c1), int8(r2), int8(c2)}
}

func (m Move) Equal(rhs Move) bool {
	return m == rhs
}

func (m Move) IsRemoval() bool {
	return m.R1 == m.R2 && m.C1 == m.C2
}

func (m Move) Origin() Coord {
	return Coord{int(m.R1), int(m.C1)}
}

func (m Move) Dest() Coord {
	return Coord{int(m.R2), int(m.C2)}
}

func (m Move) String() string {
	return fmt.Sprintf("[%d %d %d %d]", m.R1, m.C1, m.R2, m.C2)
}

var ErrInvalidMove = errors.New("invalid move")

func invalid(m Move, format string, args ...interface{}) error {
	return fmt.Errorf("%w %s: %s", ErrInvalidMove, m, fmt.Sprintf(format, args...))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// NextBoard returns the board that results from mover playing m. The
// receiver is never modified; on error the returned board is nil and
// the error wraps ErrInvalidMove.
func (b *Board) NextBoard(mover Color, m Move) (*Board, error) {
	r1, c1 := int(m.R1), int(m.C1)
	r2, c2 := int(m.R2), int(m.C2)

	if !b.Valid(r1, c1) || !b.Valid(r2, c2) {
		return nil, invalid(m, "out of bounds")
	}
	if mover != Black && mover != White {
		return nil, invalid(m, "bad mover %s", mover)
	}
	if b.At(r1, c1).Piece != mover {
		return nil, invalid(m, "origin does not hold a %s piece", mover)
	}
	if r1 != r2 && c1 != c2 {
		return nil, invalid(m, "not along a row or column")
	}
	dist := abs(r1 - r2 + c1 - c2)
	if dist == 0 {
		if !b.IsOpeningPhase() {
			return nil, invalid(m, "removal outside the opening")
		}
		next := b.clone()
		next.clearTint()
		next.set(r1, c1, NoColor)
		next.phase = b.phase.next()
		next.analyze()
		return next, nil
	}
	if b.At(r2, c2).Piece != NoColor {
		return nil, invalid(m, "destination occupied")
	}
	if dist%2 != 0 {
		return nil, invalid(m, "odd distance %d", dist)
	}

	jumps := dist / 2
	dr, dc := (r2-r1)/dist, (c2-c1)/dist
	opp := mover.Flip()
	next := b.clone()
	next.clearTint()
	for i := 0; i < jumps; i++ {
		if next.At(r1+dr, c1+dc).Piece != opp {
			return nil, invalid(m, "(%d,%d) is not a %s piece", r1+dr, c1+dc, opp)
		}
		if i < jumps-1 && next.At(r1+2*dr, c1+2*dc).Piece != NoColor {
			return nil, invalid(m, "landing (%d,%d) occupied", r1+2*dr, c1+2*dc)
		}
		next.set(r1, c1, NoColor)
		next.set(r1+dr, c1+dc, NoColor)
		r1 += 2 * dr
		c1 += 2 * dc
		next.set(r1, c1, mover)
	}
	next.phase = Midgame
	next.analyze()
	return next, nil
}

func (b *Board) clearTint() {
	for i := range b.cells {
		b.cells[i].Tint = TintNone
	}
}

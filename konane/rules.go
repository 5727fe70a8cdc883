package konane

// FirstPlayer moves first and owns the corner at (0,0).
const FirstPlayer = Black

// InitializeBoard returns the starting position: every cell occupied,
// colors alternating along rows and columns, Black at (0,0).
func InitializeBoard(size int) (*Board, error) {
	if size < MinSize || size > MaxSize {
		return nil, ErrUnsupportedSize
	}
	rows := make([][]Color, size)
	piece := Black
	for r := range rows {
		rows[r] = make([]Color, size)
		for c := range rows[r] {
			rows[r][c] = piece
			piece = piece.Flip()
		}
		if size%2 == 0 {
			piece = piece.Flip()
		}
	}
	return FromSquares(rows)
}

func Opponent(c Color) Color {
	return c.Flip()
}

var (
	directions = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
)

// GenerateMoves returns every move available to mover, in a stable
// order: opening removals in their fixed order, otherwise by origin in
// row-major order, then direction (up, right, down, left), then
// increasing distance.
func GenerateMoves(b *Board, mover Color) []Move {
	return AllMoves(b, mover, nil)
}

// AllMoves is GenerateMoves appending into moves.
func AllMoves(b *Board, mover Color, moves []Move) []Move {
	if b.IsOpeningPhase() {
		if mover == FirstPlayer {
			return firstMoves(b, mover, moves)
		}
		return secondMoves(b, mover, moves)
	}
	opp := mover.Flip()
	size := b.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if b.At(r, c).Piece != mover {
				continue
			}
			for _, d := range directions {
				moves = probe(b, moves, r, c, d[0], d[1], opp)
			}
		}
	}
	return moves
}

// probe appends the jumps from (r,c) in direction (dr,dc). The jump
// over factor cells lands at factor+1; longer jumps are only tried
// after the shorter one succeeded.
func probe(b *Board, moves []Move, r, c, dr, dc int, opp Color) []Move {
	for factor := 1; ; factor += 2 {
		if !b.Contains(r+factor*dr, c+factor*dc, opp) ||
			!b.Contains(r+(factor+1)*dr, c+(factor+1)*dc, NoColor) {
			return moves
		}
		moves = append(moves, Jump(r, c, r+(factor+1)*dr, c+(factor+1)*dc))
	}
}

func appendRemovals(b *Board, mover Color, moves []Move, cells ...Coord) []Move {
	for _, rc := range cells {
		if b.Contains(rc.Row, rc.Col, mover) {
			moves = append(moves, Removal(rc.Row, rc.Col))
		}
	}
	return moves
}

// firstMoves: the first player removes a piece from one corner or one
// of the two central cells on the main diagonal.
func firstMoves(b *Board, mover Color, moves []Move) []Move {
	s := b.Size()
	return appendRemovals(b, mover, moves,
		Coord{0, 0},
		Coord{s - 1, s - 1},
		Coord{s / 2, s / 2},
		Coord{s/2 - 1, s/2 - 1},
	)
}

// secondMoves: the second player removes one of their pieces next to
// the hole left by the first player.
func secondMoves(b *Board, mover Color, moves []Move) []Move {
	s := b.Size()
	switch {
	case b.At(0, 0).Empty():
		return appendRemovals(b, mover, moves, Coord{0, 1}, Coord{1, 0})
	case b.At(s-1, s-1).Empty():
		return appendRemovals(b, mover, moves, Coord{s - 1, s - 2}, Coord{s - 2, s - 1})
	}
	pos := s / 2
	if b.At(s/2-1, s/2-1).Empty() {
		pos = s/2 - 1
	}
	return appendRemovals(b, mover, moves,
		Coord{pos, pos - 1},
		Coord{pos + 1, pos},
		Coord{pos, pos + 1},
		Coord{pos - 1, pos},
	)
}

// IsTerminal reports whether mover has no legal move.
func IsTerminal(b *Board, mover Color) bool {
	return len(AllMoves(b, mover, make([]Move, 0, 16))) == 0
}

// Winner reports whether the game is over with toMove to play, and if
// so who won. The player who cannot move loses.
func Winner(b *Board, toMove Color) (over bool, winner Color) {
	if !IsTerminal(b, toMove) {
		return false, NoColor
	}
	return true, toMove.Flip()
}

// MovesFrom returns the legal moves of mover starting at (row, col).
func MovesFrom(b *Board, mover Color, row, col int) []Move {
	var out []Move
	for _, m := range GenerateMoves(b, mover) {
		if int(m.R1) == row && int(m.C1) == col {
			out = append(out, m)
		}
	}
	return out
}

// Destinations returns the landing cells of MovesFrom.
func Destinations(b *Board, mover Color, row, col int) []Coord {
	var out []Coord
	for _, m := range MovesFrom(b, mover, row, col) {
		out = append(out, m.Dest())
	}
	return out
}

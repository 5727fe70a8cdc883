// Package notation reads and writes Konane moves and positions as text.
//
// A square is a column letter followed by a 1-based row number, so a1
// is the top-left cell (0,0) and b3 is row 2, column 1. A jump is
// written origin-destination ("a1-a3"); an opening removal is just the
// square ("d4").
package notation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/konanebot/konane/konane"
)

var moveRE = regexp.MustCompile(
	// origin [- destination]
	`^([a-h][1-8])(?:-([a-h][1-8]))?$`,
)

func parseSquare(sq string) (row, col int) {
	return int(sq[1] - '1'), int(sq[0] - 'a')
}

var squareRE = regexp.MustCompile(`^[a-h][1-8]$`)

// ParseSquare parses a single square such as "c4".
func ParseSquare(sq string) (row, col int, err error) {
	sq = strings.TrimSpace(sq)
	if !squareRE.MatchString(sq) {
		return 0, 0, fmt.Errorf("illegal square %q", sq)
	}
	row, col = parseSquare(sq)
	return row, col, nil
}

func ParseMove(move string) (konane.Move, error) {
	groups := moveRE.FindStringSubmatch(strings.TrimSpace(move))
	if groups == nil {
		return konane.Move{}, fmt.Errorf("illegal move %q", move)
	}
	r1, c1 := parseSquare(groups[1])
	if groups[2] == "" {
		return konane.Removal(r1, c1), nil
	}
	r2, c2 := parseSquare(groups[2])
	if r1 == r2 && c1 == c2 {
		return konane.Move{}, errors.New("jump to its own origin")
	}
	return konane.Jump(r1, c1, r2, c2), nil
}

func FormatSquare(row, col int) string {
	return string([]byte{byte('a' + col), byte('1' + row)})
}

func FormatMove(m konane.Move) string {
	from := FormatSquare(int(m.R1), int(m.C1))
	if m.IsRemoval() {
		return from
	}
	return from + "-" + FormatSquare(int(m.R2), int(m.C2))
}

func FormatMoves(ms []konane.Move) string {
	bits := make([]string, 0, len(ms))
	for _, m := range ms {
		bits = append(bits, FormatMove(m))
	}
	return strings.Join(bits, " ")
}

func ParseMoves(s string) ([]konane.Move, error) {
	var out []konane.Move
	for _, w := range strings.Fields(s) {
		m, err := ParseMove(w)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

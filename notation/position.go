package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/konanebot/konane/konane"
)

// ParsePosition reads a position of the form
//
//	bwbw/wbwb/bwbw/wb.b w
//
// rows from the top, 'b' black, 'w' white, '.' empty, followed by the
// color to move.
func ParsePosition(s string) (*konane.Board, konane.Color, error) {
	words := strings.Fields(s)
	if len(words) != 2 {
		return nil, konane.NoColor, errors.New("bad position: wrong number of words")
	}
	var toMove konane.Color
	switch words[1] {
	case "b", "black":
		toMove = konane.Black
	case "w", "white":
		toMove = konane.White
	default:
		return nil, konane.NoColor, fmt.Errorf("bad color to move: %q", words[1])
	}
	b, err := ParseBoard(words[0])
	if err != nil {
		return nil, konane.NoColor, err
	}
	return b, toMove, nil
}

// ParseBoard reads the rows part of a position.
func ParseBoard(s string) (*konane.Board, error) {
	var rows [][]konane.Color
	for i, r := range strings.Split(s, "/") {
		row := make([]konane.Color, 0, len(r))
		for _, ch := range r {
			switch ch {
			case 'b', 'B':
				row = append(row, konane.Black)
			case 'w', 'W':
				row = append(row, konane.White)
			case '.', '_', 'x':
				row = append(row, konane.NoColor)
			default:
				return nil, fmt.Errorf("row %d: bad cell %q", i+1, ch)
			}
		}
		rows = append(rows, row)
	}
	b, err := konane.FromSquares(rows)
	if err != nil {
		return nil, fmt.Errorf("parse board: %w", err)
	}
	return b, nil
}

func FormatBoard(b *konane.Board) string {
	rows := make([]string, 0, b.Size())
	for r := 0; r < b.Size(); r++ {
		var row strings.Builder
		for c := 0; c < b.Size(); c++ {
			row.WriteByte(pieceByte(b.At(r, c).Piece))
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "/")
}

func FormatPosition(b *konane.Board, toMove konane.Color) string {
	return FormatBoard(b) + " " + string(pieceByte(toMove))
}

func pieceByte(c konane.Color) byte {
	switch c {
	case konane.Black:
		return 'b'
	case konane.White:
		return 'w'
	}
	return '.'
}

// Package konanetest contains helpers for building positions in tests.
package konanetest

import (
	"strings"

	"github.com/konanebot/konane/konane"
	"github.com/konanebot/konane/notation"
)

func Move(s string) konane.Move {
	m, e := notation.ParseMove(s)
	if e != nil {
		panic(e)
	}
	return m
}

func Moves(s string) []konane.Move {
	ms, e := notation.ParseMoves(s)
	if e != nil {
		panic(e)
	}
	return ms
}

// Board parses a diagram with one row per line, e.g.
//
//	b w . w
//	w b w b
//
// Whitespace between cells is optional.
func Board(tpl string) *konane.Board {
	lines := strings.Split(strings.Trim(tpl, " \t\n"), "\n")
	rows := make([]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, strings.Join(strings.Fields(l), ""))
	}
	b, e := notation.ParseBoard(strings.Join(rows, "/"))
	if e != nil {
		panic(e)
	}
	return b
}

// Position plays ms from the starting position of the given size,
// Black moving first, and returns the board and the color to move.
func Position(size int, ms string) (*konane.Board, konane.Color) {
	b, e := konane.InitializeBoard(size)
	if e != nil {
		panic(e)
	}
	toMove := konane.FirstPlayer
	for _, m := range Moves(ms) {
		b, e = b.NextBoard(toMove, m)
		if e != nil {
			panic(e)
		}
		toMove = toMove.Flip()
	}
	return b, toMove
}

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/context"

	"github.com/konanebot/konane/konane"
	"github.com/konanebot/konane/notation"
)

// NewCLIPlayer returns a player reading moves for color from in.
// Entering "? <square>" lists and highlights the moves from that
// square.
func NewCLIPlayer(color konane.Color, g *Glyphs, out io.Writer, in *bufio.Reader) *CLIPlayer {
	return &CLIPlayer{color, g, out, in}
}

type CLIPlayer struct {
	color konane.Color
	g     *Glyphs
	out   io.Writer
	in    *bufio.Reader
}

func (c *CLIPlayer) GetMove(ctx context.Context, b *konane.Board) (konane.Move, bool) {
	for {
		fmt.Fprintf(c.out, "%s> ", c.color)
		line, err := c.in.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintln(c.out, "read error:", err)
			}
			return konane.Move{}, false
		}
		line = strings.TrimSpace(line)
		if q, ok := strings.CutPrefix(line, "?"); ok {
			c.hint(b, q)
			continue
		}
		m, err := notation.ParseMove(line)
		if err != nil {
			fmt.Fprintln(c.out, "parse error:", err)
			continue
		}
		if !legal(b, c.color, m) {
			fmt.Fprintf(c.out, "illegal move: %s\n", notation.FormatMove(m))
			continue
		}
		return m, true
	}
}

func (c *CLIPlayer) hint(b *konane.Board, sq string) {
	row, col, err := notation.ParseSquare(sq)
	if err != nil {
		fmt.Fprintln(c.out, "parse error:", err)
		return
	}
	moves := konane.MovesFrom(b, c.color, row, col)
	if len(moves) == 0 {
		fmt.Fprintf(c.out, "no moves from %s\n", notation.FormatSquare(row, col))
		return
	}
	RenderBoard(c.g, c.out, b.WithTint(konane.TintHighlight, konane.Destinations(b, c.color, row, col)), c.color)
	fmt.Fprintln(c.out, "moves:", notation.FormatMoves(moves))
}

func legal(b *konane.Board, color konane.Color, m konane.Move) bool {
	for _, l := range konane.GenerateMoves(b, color) {
		if l == m {
			return true
		}
	}
	return false
}

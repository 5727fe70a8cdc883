package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/net/context"

	"github.com/konanebot/konane/ai"
	"github.com/konanebot/konane/konane"
	"github.com/konanebot/konane/notation"
)

type Glyphs struct {
	Black, White string
	Empty        string
	Highlight    string
}

type CLI struct {
	moves  []konane.Move
	b      *konane.Board
	toMove konane.Color

	Size   int
	Glyphs *Glyphs
	Out    io.Writer
	White  ai.KonanePlayer
	Black  ai.KonanePlayer
}

var DefaultGlyphs = Glyphs{
	Black:     "B",
	White:     "W",
	Empty:     ".",
	Highlight: "*",
}

var UnicodeGlyphs = Glyphs{
	Black:     "●",
	White:     "○",
	Empty:     "·",
	Highlight: "◌",
}

// Play runs a game from the starting position until the side to move
// has no move or gives up, and returns the final board and the winner.
func (c *CLI) Play(ctx context.Context) (*konane.Board, konane.Color, error) {
	b, err := konane.InitializeBoard(c.Size)
	if err != nil {
		return nil, konane.NoColor, err
	}
	c.moves = nil
	c.b = b
	c.toMove = konane.FirstPlayer
	for {
		c.render()
		if over, winner := konane.Winner(c.b, c.toMove); over {
			fmt.Fprintf(c.Out, "Game Over! %s has no move, %s wins.\n", c.toMove, winner)
			return c.b, winner, nil
		}
		player := c.Black
		if c.toMove == konane.White {
			player = c.White
		}
		m, ok := player.GetMove(ctx, c.b)
		if !ok {
			fmt.Fprintf(c.Out, "%s resigns.\n", c.toMove)
			return c.b, c.toMove.Flip(), nil
		}
		next, e := c.b.NextBoard(c.toMove, m)
		if e != nil {
			fmt.Fprintln(c.Out, "illegal move:", e)
			continue
		}
		c.moves = append(c.moves, m)
		if c.toMove == konane.FirstPlayer {
			fmt.Fprintf(c.Out, "%d. %s\n", (len(c.moves)+1)/2, notation.FormatMove(m))
		} else {
			fmt.Fprintf(c.Out, "%d. ... %s\n", (len(c.moves)+1)/2, notation.FormatMove(m))
		}
		c.b = next
		c.toMove = c.toMove.Flip()
	}
}

func (c *CLI) Moves() []konane.Move {
	return c.moves
}

func (c *CLI) render() {
	RenderBoard(c.Glyphs, c.Out, c.b, c.toMove)
}

// RenderBoard draws b with row numbers down the left and column
// letters along the bottom, matching the move notation.
func RenderBoard(g *Glyphs, out io.Writer, b *konane.Board, toMove konane.Color) {
	if g == nil {
		g = &DefaultGlyphs
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "[%s to play]\n", toMove)
	w := tabwriter.NewWriter(out, 2, 8, 1, ' ', 0)
	for r := 0; r < b.Size(); r++ {
		fmt.Fprintf(w, "%d.\t", r+1)
		for col := 0; col < b.Size(); col++ {
			cell := b.At(r, col)
			var glyph string
			switch cell.Piece {
			case konane.Black:
				glyph = g.Black
			case konane.White:
				glyph = g.White
			case konane.NoColor:
				glyph = g.Empty
				if cell.Tint == konane.TintHighlight {
					glyph = g.Highlight
				}
			default:
				panic(fmt.Sprintf("bad piece %v", cell.Piece))
			}
			fmt.Fprintf(w, "%s\t", glyph)
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "\t")
	for col := 0; col < b.Size(); col++ {
		fmt.Fprintf(w, "%c\t", 'a'+col)
	}
	fmt.Fprintf(w, "\n")
	w.Flush()
	fmt.Fprintf(out, "pieces: B:%d W:%d\n", b.Count(konane.Black), b.Count(konane.White))
}

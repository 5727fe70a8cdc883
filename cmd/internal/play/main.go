package play

import (
	"bufio"
	"context"
	"flag"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/konanebot/konane/ai"
	"github.com/konanebot/konane/cli"
	"github.com/konanebot/konane/cmd/internal/opt"
	"github.com/konanebot/konane/konane"
	"github.com/konanebot/konane/notation"
)

type Command struct {
	white string
	black string
	size  int
	seed  uint64
	out   string

	unicode bool

	mm opt.Minimax
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play Konane from the command line" }
func (*Command) Usage() string {
	return `play [flags]

Play Konane on the command-line, against a human or AI. Players are
"human", "random[:SEED]" or "minimax[:DEPTH]".

Humans enter moves as a square ("d4") for an opening removal or
origin-destination ("a3-a1") for a jump. "? SQUARE" lists the moves
from that square.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.white, "white", "human", "white player")
	flags.StringVar(&c.black, "black", "human", "black player")
	flags.IntVar(&c.size, "size", 6, "board size")
	flags.Uint64Var(&c.seed, "seed", 0, "seed for random players (0 = time-based)")
	flags.StringVar(&c.out, "out", "", "write the move list to file")

	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")

	c.mm.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = uint64(time.Now().UnixNano())
	}
	in := bufio.NewReader(os.Stdin)
	g := glyphs(c.unicode)
	black, err := c.parsePlayer(in, g, c.black, konane.Black)
	if err != nil {
		log.Error().Err(err).Msg("-black")
		return subcommands.ExitUsageError
	}
	white, err := c.parsePlayer(in, g, c.white, konane.White)
	if err != nil {
		log.Error().Err(err).Msg("-white")
		return subcommands.ExitUsageError
	}
	st := &cli.CLI{
		Size:   c.size,
		Out:    os.Stdout,
		White:  white,
		Black:  black,
		Glyphs: g,
	}
	_, winner, err := st.Play(ctx)
	if err != nil {
		log.Error().Err(err).Int("size", c.size).Msg("play")
		return subcommands.ExitFailure
	}
	log.Info().
		Str("black", c.black).
		Str("white", c.white).
		Str("winner", winner.String()).
		Int("plies", len(st.Moves())).
		Msg("game over")
	if c.out != "" {
		if err := os.WriteFile(c.out, []byte(notation.FormatMoves(st.Moves())+"\n"), 0644); err != nil {
			log.Error().Err(err).Str("path", c.out).Msg("write moves")
			return subcommands.ExitFailure
		}
	}

	return subcommands.ExitSuccess
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}

func (c *Command) parsePlayer(in *bufio.Reader, g *cli.Glyphs, s string, color konane.Color) (ai.KonanePlayer, error) {
	if s == "human" {
		return cli.NewCLIPlayer(color, g, os.Stdout, in), nil
	}
	return opt.ParsePlayer(s, color, &c.mm, c.seed+uint64(color))
}

package analyze

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/konanebot/konane/ai"
	"github.com/konanebot/konane/cli"
	"github.com/konanebot/konane/cmd/internal/opt"
	"github.com/konanebot/konane/konane"
	"github.com/konanebot/konane/notation"
)

type Command struct {
	quiet     bool
	eval      bool
	explain   bool
	variation string

	mmopt opt.Minimax
}

func (*Command) Name() string     { return "analyze" }
func (*Command) Synopsis() string { return "Search a position and report the best move" }
func (*Command) Usage() string {
	return `analyze [options] POSITION

Evaluate a position given as rows separated by "/" followed by the
side to move, e.g.

  analyze -depth 4 ".wbwbw/wbwbwb/bwbwbw/wbwbwb/bwbwbw/wbwbwb w"

Use -variation to play additional moves before the analysis.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.BoolVar(&c.quiet, "quiet", false, "don't print board diagrams")
	flags.BoolVar(&c.eval, "evaluate", false, "only show static evaluation")
	flags.BoolVar(&c.explain, "explain", false, "explain scoring")
	flags.StringVar(&c.variation, "variation", "", "apply the listed moves after the given position")

	c.mmopt.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flag.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	b, toMove, err := notation.ParsePosition(flag.Arg(0))
	if err != nil {
		log.Error().Err(err).Msg("parse position")
		return subcommands.ExitUsageError
	}
	if c.variation != "" {
		b, toMove, err = applyVariation(b, toMove, c.variation)
		if err != nil {
			log.Error().Err(err).Msg("-variation")
			return subcommands.ExitFailure
		}
	}
	cfg, err := c.mmopt.BuildConfig(toMove)
	if err != nil {
		log.Error().Err(err).Msg("configure")
		return subcommands.ExitUsageError
	}
	c.analyze(ctx, os.Stdout, ai.NewMinimax(cfg), b, toMove)
	return subcommands.ExitSuccess
}

func applyVariation(b *konane.Board, toMove konane.Color, variation string) (*konane.Board, konane.Color, error) {
	ms, err := notation.ParseMoves(variation)
	if err != nil {
		return nil, konane.NoColor, err
	}
	for _, m := range ms {
		b, err = b.NextBoard(toMove, m)
		if err != nil {
			return nil, konane.NoColor, fmt.Errorf("%s: %w", notation.FormatMove(m), err)
		}
		toMove = toMove.Flip()
	}
	return b, toMove, nil
}

func (c *Command) analyze(ctx context.Context, out io.Writer, mm *ai.MinimaxAI, b *konane.Board, toMove konane.Color) {
	e := mm.Evaluator()
	if !c.quiet {
		cli.RenderBoard(nil, out, b, toMove)
		if c.explain {
			ai.ExplainScore(e, out, b, toMove)
		}
	}
	if c.eval {
		fmt.Fprintf(out, " value=%d\n", e.Evaluate(b, toMove))
		return
	}
	fmt.Fprintf(out, " moves: %s\n", notation.FormatMoves(konane.GenerateMoves(b, toMove)))

	m, val, st, ok := mm.Analyze(ctx, b)
	if !ok {
		if over, winner := konane.Winner(b, toMove); over {
			fmt.Fprintf(out, " game over: %s wins\n", winner)
		} else {
			fmt.Fprintf(out, " no move\n")
		}
		return
	}
	p := message.NewPrinter(language.English)
	p.Fprintf(out, "AI analysis:\n")
	p.Fprintf(out, " move=%s value=%d\n", notation.FormatMove(m), val)
	p.Fprintf(out, " depth=%d visited=%d evaluated=%d terminal=%d cut=%d time=%s\n",
		st.Depth, st.Visited, st.Evaluated, st.Terminal, st.CutNodes, st.Elapsed)
	fmt.Fprintln(out)

	if c.quiet {
		return
	}
	next, err := b.NextBoard(toMove, m)
	if err != nil {
		panic(fmt.Sprintf("analyze: engine returned illegal move %s: %v", notation.FormatMove(m), err))
	}
	fmt.Fprintln(out, "Resulting position:")
	cli.RenderBoard(nil, out, next, toMove.Flip())
	fmt.Fprintf(out, "[%s]\n", notation.FormatPosition(next, toMove.Flip()))
	fmt.Fprintln(out)
}

package selfplay

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/konanebot/konane/konane"
	"github.com/konanebot/konane/logs"
	"github.com/konanebot/konane/notation"
)

type Command struct {
	size int
	p1   string
	p2   string
	seed uint64

	games int
	swap  bool

	threads int

	db      string
	verbose bool

	cfg Config
}

func (*Command) Name() string     { return "selfplay" }
func (*Command) Synopsis() string { return "Play two AIs against each other and report results" }
func (*Command) Usage() string {
	return `selfplay [flags]

Players are "random[:SEED]" or "minimax[:DEPTH]"; minimax players
share the -depth, -weights and -cache-size options.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.size, "size", 6, "board size")
	flags.StringVar(&c.p1, "p1", "minimax", "player 1")
	flags.StringVar(&c.p2, "p2", "random", "player 2")

	flags.Uint64Var(&c.seed, "seed", 0, "starting random seed")
	flags.IntVar(&c.games, "games", 10, "number of games to play per color")
	flags.BoolVar(&c.swap, "swap", true, "swap colors each game")
	flags.IntVar(&c.threads, "workers", 4, "number of games to play in parallel")
	flags.StringVar(&c.db, "db", "", "record finished games in this sqlite database")
	flags.BoolVar(&c.verbose, "v", false, "verbose output")

	c.cfg.Minimax.AddFlags(flags)
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.seed == 0 {
		c.seed = uint64(time.Now().Unix())
	}
	if c.threads < 1 {
		c.threads = 1
	}

	cfg := c.cfg
	cfg.Size = c.size
	cfg.Games = c.games
	cfg.Swap = c.swap
	cfg.Threads = c.threads
	cfg.Seed = c.seed
	cfg.Verbose = c.verbose
	cfg.P1 = c.p1
	cfg.P2 = c.p2

	st, err := Simulate(ctx, &cfg)
	if err != nil {
		log.Error().Err(err).Msg("selfplay")
		return subcommands.ExitFailure
	}

	if c.db != "" {
		if err := c.record(&st); err != nil {
			log.Error().Err(err).Str("db", c.db).Msg("record games")
			return subcommands.ExitFailure
		}
	}

	log.Info().
		Int("games", st.Count()).
		Uint64("seed", c.seed).
		Int("white", st.White).
		Int("black", st.Black).
		Msg("done")
	summarize(os.Stderr, &st)

	return subcommands.ExitSuccess
}

func summarize(out io.Writer, st *Stats) {
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "\twhite\tblack\tsum\n")
	fmt.Fprintf(tw, "p1\t%d\t%d\t%d\n", st.Players[0].WhiteWins, st.Players[0].BlackWins, st.Players[0].Wins)
	fmt.Fprintf(tw, "p2\t%d\t%d\t%d\n", st.Players[1].WhiteWins, st.Players[1].BlackWins, st.Players[1].Wins)
	fmt.Fprintf(tw, "sum\t%d\t%d\t%d\n",
		st.Players[0].WhiteWins+st.Players[1].WhiteWins,
		st.Players[0].BlackWins+st.Players[1].BlackWins,
		st.Players[0].Wins+st.Players[1].Wins,
	)
	tw.Flush()

	p := message.NewPrinter(language.English)
	if n := st.Count(); n > 0 {
		p.Fprintf(out, "%d games, %d plies (%.1f per game)\n", n, st.Plies, float64(st.Plies)/float64(n))
	}
}

func (c *Command) record(st *Stats) error {
	repo, err := logs.Open(c.db)
	if err != nil {
		return err
	}
	defer repo.Close()
	gs := make([]*logs.Game, 0, len(st.Games))
	for i := range st.Games {
		gs = append(gs, gameRecord(c.size, c.p1, c.p2, &st.Games[i]))
	}
	return repo.InsertGames(gs)
}

func gameRecord(size int, p1, p2 string, r *Result) *logs.Game {
	black, white := p1, p2
	if r.P1Color() == konane.White {
		black, white = p2, p1
	}
	return &logs.Game{
		Timestamp: r.Start,
		Size:      size,
		Black:     black,
		White:     white,
		Winner:    r.Winner.String(),
		Plies:     len(r.Moves),
		Moves:     notation.FormatMoves(r.Moves),
	}
}

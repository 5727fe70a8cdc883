package selfplay

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/konanebot/konane/ai"
	"github.com/konanebot/konane/cmd/internal/opt"
	"github.com/konanebot/konane/konane"
	"github.com/konanebot/konane/notation"
)

type Config struct {
	Games int

	Verbose bool

	P1, P2 string
	Minimax opt.Minimax

	Size    int
	Swap    bool
	Threads int
	Seed    uint64
}

type Stats struct {
	Players [2]struct {
		Wins      int
		WhiteWins int
		BlackWins int
	}
	White, Black int
	Plies        int

	Games []Result `json:"-"`
}

func (s *Stats) Count() int {
	return s.White + s.Black
}

type gameSpec struct {
	i       int
	p1color konane.Color
}

type Result struct {
	spec     gameSpec
	Position *konane.Board
	Moves    []konane.Move
	Winner   konane.Color
	Start    time.Time
}

// P1Color is the color player 1 had in this game.
func (r *Result) P1Color() konane.Color {
	return r.spec.p1color
}

// Simulate plays c.Games games (twice that with c.Swap) on c.Threads
// workers. Each worker owns its players, and so its evaluation caches.
func Simulate(ctx context.Context, c *Config) (Stats, error) {
	var st Stats
	games := make(chan gameSpec)
	rc := make(chan Result)

	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		defer close(games)
		n := c.Games
		if c.Swap {
			n *= 2
		}
		for g := 0; g < n; g++ {
			spec := gameSpec{i: g, p1color: konane.Black}
			if c.Swap && g%2 == 1 {
				spec.p1color = konane.White
			}
			select {
			case games <- spec:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for w := 0; w < c.Threads; w++ {
		grp.Go(func() error {
			return worker(ctx, c, w, games, rc)
		})
	}
	var err error
	go func() {
		err = grp.Wait()
		close(rc)
	}()

	for r := range rc {
		if c.Verbose {
			log.Info().
				Int("game", r.spec.i).
				Str("p1", r.spec.p1color.String()).
				Str("winner", r.Winner.String()).
				Int("plies", len(r.Moves)).
				Int("black", r.Position.Count(konane.Black)).
				Int("white", r.Position.Count(konane.White)).
				Msg("game")
		}
		if r.Winner == konane.White {
			st.White++
		} else {
			st.Black++
		}
		pst := &st.Players[0]
		if r.Winner != r.spec.p1color {
			pst = &st.Players[1]
		}
		if r.Winner == konane.White {
			pst.WhiteWins++
		} else {
			pst.BlackWins++
		}
		pst.Wins++
		st.Plies += len(r.Moves)
		st.Games = append(st.Games, r)
	}
	return st, err
}

type players struct {
	black, white ai.KonanePlayer
}

func worker(ctx context.Context, c *Config, id int, games <-chan gameSpec, out chan<- Result) error {
	seed := c.Seed + uint64(4*id)
	build := func(spec string, color konane.Color, seed uint64) (ai.KonanePlayer, error) {
		p, err := opt.ParsePlayer(spec, color, &c.Minimax, seed)
		if err != nil {
			return nil, fmt.Errorf("worker %d: %w", id, err)
		}
		return p, nil
	}
	var p1, p2 players
	var err error
	if p1.black, err = build(c.P1, konane.Black, seed); err != nil {
		return err
	}
	if p1.white, err = build(c.P1, konane.White, seed+1); err != nil {
		return err
	}
	if p2.black, err = build(c.P2, konane.Black, seed+2); err != nil {
		return err
	}
	if p2.white, err = build(c.P2, konane.White, seed+3); err != nil {
		return err
	}

	for g := range games {
		black, white := p1.black, p2.white
		if g.p1color == konane.White {
			black, white = p2.black, p1.white
		}
		r, err := playGame(ctx, c.Size, black, white)
		if err != nil {
			return err
		}
		r.spec = g
		out <- r
	}
	return nil
}

func playGame(ctx context.Context, size int, black, white ai.KonanePlayer) (Result, error) {
	r := Result{Start: time.Now()}
	b, err := konane.InitializeBoard(size)
	if err != nil {
		return r, err
	}
	toMove := konane.FirstPlayer
	for {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		player := black
		if toMove == konane.White {
			player = white
		}
		m, ok := player.GetMove(ctx, b)
		if !ok {
			break
		}
		next, e := b.NextBoard(toMove, m)
		if e != nil {
			panic(fmt.Sprintf("illegal move: %s: %v", notation.FormatMove(m), e))
		}
		b = next
		r.Moves = append(r.Moves, m)
		toMove = toMove.Flip()
	}
	r.Position = b
	r.Winner = toMove.Flip()
	return r, nil
}

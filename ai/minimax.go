package ai

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"

	"github.com/konanebot/konane/konane"
	"github.com/konanebot/konane/notation"
)

const (
	MaxEval int64 = 1_000_000
	MinEval       = -MaxEval
)

type MinimaxConfig struct {
	Color konane.Color
	Depth int
	Debug int

	// Threads > 1 searches the root's children in parallel.
	Threads int

	// Evaluator scores leaves. A nil Evaluator gets a fresh one with
	// DefaultWeights.
	Evaluator *Evaluator
}

type Stats struct {
	Depth     int
	Visited   uint64
	Evaluated uint64
	Terminal  uint64
	CutNodes  uint64

	Elapsed time.Duration
}

func (st *Stats) add(o *Stats) {
	st.Visited += o.Visited
	st.Evaluated += o.Evaluated
	st.Terminal += o.Terminal
	st.CutNodes += o.CutNodes
}

// MinimaxAI is a fixed-depth alpha-beta searcher playing one color.
type MinimaxAI struct {
	cfg  MinimaxConfig
	eval *Evaluator
}

func NewMinimax(cfg MinimaxConfig) *MinimaxAI {
	if cfg.Color != konane.Black && cfg.Color != konane.White {
		panic(fmt.Sprintf("NewMinimax: bad color %d", cfg.Color))
	}
	m := &MinimaxAI{cfg: cfg, eval: cfg.Evaluator}
	if m.eval == nil {
		m.eval = NewEvaluator(nil)
	}
	return m
}

func (m *MinimaxAI) Config() MinimaxConfig {
	cfg := m.cfg
	cfg.Evaluator = m.eval
	return cfg
}

func (m *MinimaxAI) Evaluator() *Evaluator {
	return m.eval
}

// SelectMove returns the best move for the configured color, or false
// if the depth is zero or the color has no legal move.
func (m *MinimaxAI) SelectMove(b *konane.Board) (konane.Move, bool) {
	mv, _, _, ok := m.Analyze(context.Background(), b)
	return mv, ok
}

func (m *MinimaxAI) GetMove(ctx context.Context, b *konane.Board) (konane.Move, bool) {
	mv, _, _, ok := m.Analyze(ctx, b)
	return mv, ok
}

// Analyze searches b and returns the chosen move together with its
// backed-up value from the configured color's point of view. A search
// that has started always runs to completion; ctx is only consulted
// before it begins.
func (m *MinimaxAI) Analyze(ctx context.Context, b *konane.Board) (konane.Move, int64, Stats, bool) {
	st := Stats{Depth: m.cfg.Depth}
	if m.cfg.Depth <= 0 || ctx.Err() != nil {
		return konane.Move{}, 0, st, false
	}
	start := time.Now()
	moves := konane.GenerateMoves(b, m.cfg.Color)
	if len(moves) == 0 {
		return konane.Move{}, 0, st, false
	}

	var best konane.Move
	var v int64
	if m.cfg.Threads > 1 && len(moves) > 1 {
		best, v = m.rootSplit(b, moves, &st)
	} else {
		s := m.newSearcher()
		best, v = s.negamax(b, m.cfg.Color, 0, MinEval, MaxEval)
		st.add(&s.st)
	}
	st.Elapsed = time.Since(start)

	if m.cfg.Debug > 0 {
		log.Debug().
			Str("color", m.cfg.Color.String()).
			Int("depth", m.cfg.Depth).
			Str("move", notation.FormatMove(best)).
			Int64("value", v).
			Uint64("visited", st.Visited).
			Uint64("evaluated", st.Evaluated).
			Uint64("cut", st.CutNodes).
			Dur("elapsed", st.Elapsed).
			Msg("[minimax] search")
	}
	if m.cfg.Debug > 1 {
		cs := m.eval.CacheStats()
		log.Debug().
			Uint64("hits", cs.Hits).
			Uint64("misses", cs.Misses).
			Int("size", cs.Size).
			Msg("[minimax] cache")
	}
	return best, v, st, true
}

// rootSplit searches each root child with the full window on its own
// goroutine and combines the results in generation order, so it picks
// the same move and value as the sequential search.
func (m *MinimaxAI) rootSplit(b *konane.Board, moves []konane.Move, st *Stats) (konane.Move, int64) {
	values := make([]int64, len(moves))
	stats := make([]Stats, len(moves))

	var g errgroup.Group
	g.SetLimit(m.cfg.Threads)
	for i, mv := range moves {
		g.Go(func() error {
			child := mustMove(b, m.cfg.Color, mv)
			s := m.newSearcher()
			v := s.value(child, m.cfg.Color.Flip(), 1, MinEval, MaxEval)
			values[i] = -v
			stats[i] = s.st
			return nil
		})
	}
	g.Wait()

	st.Visited++
	var best konane.Move
	bestV := MinEval - 1
	for i, mv := range moves {
		st.add(&stats[i])
		if m.cfg.Debug > 2 {
			log.Debug().
				Str("move", notation.FormatMove(mv)).
				Int64("value", values[i]).
				Msg("[minimax] root")
		}
		if values[i] > bestV {
			best, bestV = mv, values[i]
		}
	}
	return best, bestV
}

type searcher struct {
	ai    *MinimaxAI
	depth int
	st    Stats
	stack [][]konane.Move
}

func (m *MinimaxAI) newSearcher() *searcher {
	return &searcher{
		ai:    m,
		depth: m.cfg.Depth,
		stack: make([][]konane.Move, m.cfg.Depth+1),
	}
}

func mustMove(b *konane.Board, mover konane.Color, m konane.Move) *konane.Board {
	child, err := b.NextBoard(mover, m)
	if err != nil {
		panic(fmt.Sprintf("minimax: generated illegal move %s: %v", m, err))
	}
	return child
}

func (s *searcher) value(b *konane.Board, mover konane.Color, ply int, α, β int64) int64 {
	_, v := s.negamax(b, mover, ply, α, β)
	return v
}

// negamax returns the value of b for mover, searched to the
// configured depth. Leaves are scored from mover's point of view; the
// returned move is meaningful only when b is not a leaf.
func (s *searcher) negamax(b *konane.Board, mover konane.Color, ply int, α, β int64) (konane.Move, int64) {
	if ply == s.depth {
		s.st.Evaluated++
		return konane.Move{}, s.ai.eval.Evaluate(b, mover)
	}
	moves := konane.AllMoves(b, mover, s.stack[ply][:0])
	s.stack[ply] = moves
	if len(moves) == 0 {
		s.st.Evaluated++
		s.st.Terminal++
		return konane.Move{}, s.ai.eval.Evaluate(b, mover)
	}

	s.st.Visited++
	opp := mover.Flip()
	var best konane.Move
	bestV := MinEval - 1
	for _, m := range moves {
		child := mustMove(b, mover, m)
		v := -s.value(child, opp, ply+1, -β, -α)
		if v > bestV {
			best, bestV = m, v
		}
		if bestV > α {
			α = bestV
		}
		if α >= β {
			s.st.CutNodes++
			break
		}
	}
	return best, bestV
}

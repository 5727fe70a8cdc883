package ai

import (
	"flag"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"github.com/konanebot/konane/konane"
	"github.com/konanebot/konane/konanetest"
)

var size = flag.Int("size", 6, "board size to benchmark")
var depth = flag.Int("depth", 4, "minimax search depth")

// reference is plain minimax without pruning: the maximizing side is
// root and every leaf is scored from root's point of view.
func reference(e *Evaluator, b *konane.Board, root, toMove konane.Color, ply, depth int) int64 {
	moves := konane.GenerateMoves(b, toMove)
	if ply == depth || len(moves) == 0 {
		return e.Evaluate(b, root)
	}
	var best int64
	for i, m := range moves {
		child, err := b.NextBoard(toMove, m)
		if err != nil {
			panic(err)
		}
		v := reference(e, child, root, toMove.Flip(), ply+1, depth)
		if i == 0 || (toMove == root && v > best) || (toMove != root && v < best) {
			best = v
		}
	}
	return best
}

// referenceMove returns the first root move whose value equals the
// root's value.
func referenceMove(e *Evaluator, b *konane.Board, root konane.Color, depth int) (konane.Move, int64) {
	want := reference(e, b, root, root, 0, depth)
	for _, m := range konane.GenerateMoves(b, root) {
		child, _ := b.NextBoard(root, m)
		if reference(e, child, root, root.Flip(), 1, depth) == want {
			return m, want
		}
	}
	panic("no move attains the root value")
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	e := NewEvaluator(nil)
	var positions []position
	for _, size := range []int{4, 5, 6} {
		positions = append(positions, randomPositions(t, size, 2, uint64(10*size))...)
	}
	for _, depth := range []int{1, 2, 3} {
		for i, p := range positions {
			if konane.IsTerminal(p.b, p.toMove) {
				continue
			}
			ai := NewMinimax(MinimaxConfig{
				Color:     p.toMove,
				Depth:     depth,
				Evaluator: e,
			})
			m, v, st, ok := ai.Analyze(context.Background(), p.b)
			require.True(t, ok)
			wantM, wantV := referenceMove(e, p.b, p.toMove, depth)
			if v != wantV || m != wantM {
				t.Fatalf("depth=%d pos=%d: got %s=%d want %s=%d", depth, i, m, v, wantM, wantV)
			}
			assert.Equal(t, depth, st.Depth)
			assert.NotZero(t, st.Evaluated)
		}
	}
}

func TestRootSplitMatchesSequential(t *testing.T) {
	for _, p := range randomPositions(t, 6, 2, 99) {
		if konane.IsTerminal(p.b, p.toMove) {
			continue
		}
		seq := NewMinimax(MinimaxConfig{Color: p.toMove, Depth: 3})
		par := NewMinimax(MinimaxConfig{Color: p.toMove, Depth: 3, Threads: 4})
		m1, v1, _, ok1 := seq.Analyze(context.Background(), p.b)
		m2, v2, _, ok2 := par.Analyze(context.Background(), p.b)
		require.True(t, ok1 && ok2)
		require.Equal(t, m1, m2, "position %v", p.b.Rows())
		require.Equal(t, v1, v2)
	}
}

func TestSelectMoveNoMove(t *testing.T) {
	b, _ := konane.InitializeBoard(6)
	ai := NewMinimax(MinimaxConfig{Color: konane.Black, Depth: 0})
	_, ok := ai.SelectMove(b)
	assert.False(t, ok, "depth 0 returned a move")

	terminal := konanetest.Board(`
b . . .
. . . .
. . w .
. . . .
`)
	ai = NewMinimax(MinimaxConfig{Color: konane.Black, Depth: 3})
	_, ok = ai.SelectMove(terminal)
	assert.False(t, ok, "terminal position returned a move")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok = ai.GetMove(ctx, b)
	assert.False(t, ok, "cancelled context returned a move")
}

func TestSelectMoveLegal(t *testing.T) {
	for _, size := range []int{4, 5, 6, 7, 8} {
		t.Run(fmt.Sprintf("%dx%d", size, size), func(t *testing.T) {
			b, err := konane.InitializeBoard(size)
			require.NoError(t, err)
			players := [...]*MinimaxAI{
				konane.Black: NewMinimax(MinimaxConfig{Color: konane.Black, Depth: 2}),
				konane.White: NewMinimax(MinimaxConfig{Color: konane.White, Depth: 1}),
			}
			toMove := konane.FirstPlayer
			for {
				m, ok := players[toMove].SelectMove(b)
				if !ok {
					require.True(t, konane.IsTerminal(b, toMove))
					break
				}
				b, err = b.NextBoard(toMove, m)
				require.NoError(t, err, "ai returned illegal move %s", m)
				toMove = toMove.Flip()
			}
		})
	}
}

func TestSelectMoveDoesNotModifyBoard(t *testing.T) {
	b, toMove := konanetest.Position(6, "a1 b1 a3-a1")
	before := b.Rows()
	ai := NewMinimax(MinimaxConfig{Color: toMove, Depth: 3})
	_, ok := ai.SelectMove(b)
	require.True(t, ok)
	assert.Equal(t, before, b.Rows())
}

func TestNewMinimaxNoColor(t *testing.T) {
	assert.Panics(t, func() {
		NewMinimax(MinimaxConfig{Depth: 2})
	})
}

func BenchmarkMinimax(b *testing.B) {
	start, err := konane.InitializeBoard(*size)
	if err != nil {
		b.Fatal(err)
	}
	e := NewEvaluator(nil)
	players := [...]*MinimaxAI{
		konane.Black: NewMinimax(MinimaxConfig{Color: konane.Black, Depth: *depth, Evaluator: e}),
		konane.White: NewMinimax(MinimaxConfig{Color: konane.White, Depth: *depth, Evaluator: e}),
	}
	p, toMove := start, konane.FirstPlayer
	for i := 0; i < b.N; i++ {
		m, ok := players[toMove].SelectMove(p)
		if !ok {
			p, toMove = start, konane.FirstPlayer
			continue
		}
		p, err = p.NextBoard(toMove, m)
		if err != nil {
			b.Fatal("bad move", err)
		}
		toMove = toMove.Flip()
	}
}

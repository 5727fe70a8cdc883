package ai

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/context"

	"github.com/konanebot/konane/konane"
	"github.com/konanebot/konane/konanetest"
)

type position struct {
	b      *konane.Board
	toMove konane.Color
}

// randomPositions returns every position visited by games of random
// play between two RandomAIs.
func randomPositions(t testing.TB, size, games int, seed uint64) []position {
	t.Helper()
	var out []position
	for g := 0; g < games; g++ {
		b, err := konane.InitializeBoard(size)
		require.NoError(t, err)
		players := map[konane.Color]KonanePlayer{
			konane.Black: NewRandom(konane.Black, seed+uint64(2*g)),
			konane.White: NewRandom(konane.White, seed+uint64(2*g+1)),
		}
		toMove := konane.FirstPlayer
		for {
			out = append(out, position{b, toMove})
			m, ok := players[toMove].GetMove(context.Background(), b)
			if !ok {
				break
			}
			b, err = b.NextBoard(toMove, m)
			require.NoError(t, err, "random move %s", m)
			toMove = toMove.Flip()
		}
	}
	return out
}

func TestEvaluate(t *testing.T) {
	b := konanetest.Board(`
b w . .
. . . .
. . . .
. . . w
`)
	e := NewEvaluator(nil)
	assert.Equal(t, int64(-10), e.Evaluate(b, konane.Black))
	assert.Equal(t, int64(10), e.Evaluate(b, konane.White))

	w := Weights{Corners: 1}
	e = NewEvaluator(&w)
	assert.Equal(t, int64(0), e.Evaluate(b, konane.Black))
	assert.Equal(t, w, e.Weights())
}

func TestEvaluateAntisymmetric(t *testing.T) {
	e := NewEvaluator(nil)
	for size := konane.MinSize; size <= konane.MaxSize; size++ {
		for _, p := range randomPositions(t, size, 3, uint64(size)) {
			black := e.Evaluate(p.b, konane.Black)
			white := e.Evaluate(p.b, konane.White)
			if black != -white {
				t.Fatalf("size=%d black=%d white=%d %v", size, black, white, p.b.Rows())
			}
		}
	}
}

func TestEvaluateCache(t *testing.T) {
	b, _ := konanetest.Position(6, "a1 b1 a3-a1")
	e := NewEvaluator(nil)
	v := e.Evaluate(b, konane.White)
	require.Equal(t, CacheStats{Hits: 0, Misses: 1, Size: 1}, e.CacheStats())

	require.Equal(t, v, e.Evaluate(b, konane.White))
	require.Equal(t, CacheStats{Hits: 1, Misses: 1, Size: 1}, e.CacheStats())

	// Tints are cosmetic and share the cache entry.
	lit := b.WithTint(konane.TintHighlight, []konane.Coord{{Row: 0, Col: 0}})
	require.Equal(t, v, e.Evaluate(lit, konane.White))
	require.Equal(t, uint64(2), e.CacheStats().Hits)

	e.Reset()
	require.Equal(t, CacheStats{}, e.CacheStats())
	require.Equal(t, v, e.Evaluate(b, konane.White))
}

func TestEvaluateBoundedCache(t *testing.T) {
	e := NewEvaluator(nil, CacheSize(8))
	fresh := NewEvaluator(nil)
	for _, p := range randomPositions(t, 6, 2, 7) {
		got := e.Evaluate(p.b, p.toMove)
		require.Equal(t, fresh.Evaluate(p.b, p.toMove), got)
		require.LessOrEqual(t, e.CacheStats().Size, 8)
	}
	assert.Equal(t, 8, e.CacheStats().Size)
}

func TestExplainScore(t *testing.T) {
	b, toMove := konanetest.Position(6, "a1 b1 a3-a1")
	e := NewEvaluator(nil)
	var buf bytes.Buffer
	ExplainScore(e, &buf, b, toMove)
	out := buf.String()
	for _, f := range []string{"pieces", "mobility", "groups", "corners", "center", "total"} {
		assert.Contains(t, out, f)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	total := strings.Fields(lines[len(lines)-1])
	require.Len(t, total, 2)
	assert.Equal(t, fmt.Sprint(e.Evaluate(b, toMove)), total[1])
}

package ai

import (
	"fmt"
	"io"
	"sync/atomic"
	"text/tabwriter"

	"github.com/konanebot/konane/bitboard"
	"github.com/konanebot/konane/konane"
)

// Weights scales each positional feature. Every feature is measured
// as the evaluated color's count minus the opponent's.
type Weights struct {
	Pieces   int64
	Mobility int64
	Groups   int64
	Corners  int64
	Center   int64
}

var DefaultWeights = Weights{
	Pieces:   10,
	Mobility: 10,
	Groups:   10,
	Corners:  100,
	Center:   10,
}

// Evaluator scores positions and memoizes the result by (board, color)
// for its whole lifetime. It is safe for concurrent use.
type Evaluator struct {
	w     Weights
	cache cache

	hits, misses atomic.Uint64
}

type evaluatorOptions struct {
	cacheSize int
}

type EvaluatorOption func(*evaluatorOptions)

// CacheSize bounds the evaluation cache to n entries, evicting the
// least recently used. n <= 0 keeps every entry.
func CacheSize(n int) EvaluatorOption {
	return func(o *evaluatorOptions) {
		o.cacheSize = n
	}
}

// NewEvaluator returns an evaluator using w, or DefaultWeights if w is
// nil.
func NewEvaluator(w *Weights, opts ...EvaluatorOption) *Evaluator {
	var o evaluatorOptions
	for _, opt := range opts {
		opt(&o)
	}
	if w == nil {
		w = &DefaultWeights
	}
	e := &Evaluator{w: *w}
	if o.cacheSize > 0 {
		e.cache = newLRUCache(o.cacheSize)
	} else {
		e.cache = newMapCache()
	}
	return e
}

func (e *Evaluator) Weights() Weights {
	return e.w
}

// Evaluate returns the heuristic value of b from color's point of
// view. Evaluate(b, c) == -Evaluate(b, c.Flip()) for every board.
func (e *Evaluator) Evaluate(b *konane.Board, color konane.Color) int64 {
	k := cacheKey{b.Key(), color}
	if v, ok := e.cache.get(k); ok {
		e.hits.Add(1)
		return v
	}
	e.misses.Add(1)
	mine, theirs := extract(b, color), extract(b, color.Flip())
	v := e.w.score(&mine, &theirs)
	e.cache.put(k, v)
	return v
}

// CacheStats reports cache effectiveness since the last Reset.
type CacheStats struct {
	Hits   uint64
	Misses uint64
	Size   int
}

func (e *Evaluator) CacheStats() CacheStats {
	return CacheStats{
		Hits:   e.hits.Load(),
		Misses: e.misses.Load(),
		Size:   e.cache.len(),
	}
}

// Reset drops every cached evaluation.
func (e *Evaluator) Reset() {
	e.cache.purge()
	e.hits.Store(0)
	e.misses.Store(0)
}

type features struct {
	pieces   int64
	mobility int64
	groups   int64
	corners  int64
	center   int64
}

func extract(b *konane.Board, color konane.Color) features {
	var f features
	var bits uint64
	k := b.Key()
	switch color {
	case konane.Black:
		bits = k.Black
	case konane.White:
		bits = k.White
	default:
		return f
	}
	s := b.Size()
	f.pieces = int64(bitboard.Popcount(bits))
	f.mobility = int64(len(konane.AllMoves(b, color, make([]konane.Move, 0, 32))))
	f.groups = int64(b.GroupCount(color))
	f.corners = int64(bitboard.Popcount(bits & b.Constants().Corners))
	if b.Contains(s/2, s/2, color) {
		f.center = 1
	}
	return f
}

func (w *Weights) score(mine, theirs *features) int64 {
	return w.Pieces*(mine.pieces-theirs.pieces) +
		w.Mobility*(mine.mobility-theirs.mobility) +
		w.Groups*(mine.groups-theirs.groups) +
		w.Corners*(mine.corners-theirs.corners) +
		w.Center*(mine.center-theirs.center)
}

// ExplainScore writes a per-feature breakdown of e's evaluation of b
// from color's point of view.
func ExplainScore(e *Evaluator, out io.Writer, b *konane.Board, color konane.Color) {
	mine, theirs := extract(b, color), extract(b, color.Flip())
	tw := tabwriter.NewWriter(out, 4, 8, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\t%s\t%s\tweight\tscore\t\n", color, color.Flip())
	row := func(name string, m, t, w int64) {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t\n", name, m, t, w, w*(m-t))
	}
	row("pieces", mine.pieces, theirs.pieces, e.w.Pieces)
	row("mobility", mine.mobility, theirs.mobility, e.w.Mobility)
	row("groups", mine.groups, theirs.groups, e.w.Groups)
	row("corners", mine.corners, theirs.corners, e.w.Corners)
	row("center", mine.center, theirs.center, e.w.Center)
	fmt.Fprintf(tw, "total\t\t\t\t%d\t\n", e.w.score(&mine, &theirs))
	tw.Flush()
}

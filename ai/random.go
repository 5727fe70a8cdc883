package ai

import (
	"github.com/konanebot/konane/konane"
	"golang.org/x/exp/rand"
	"golang.org/x/net/context"
)

// RandomAI plays a uniformly random legal move.
type RandomAI struct {
	color konane.Color
	r     *rand.Rand
}

func (r *RandomAI) GetMove(ctx context.Context, b *konane.Board) (konane.Move, bool) {
	moves := konane.GenerateMoves(b, r.color)
	if len(moves) == 0 {
		return konane.Move{}, false
	}
	return moves[r.r.Intn(len(moves))], true
}

func NewRandom(color konane.Color, seed uint64) *RandomAI {
	return &RandomAI{
		color: color,
		r:     rand.New(rand.NewSource(seed)),
	}
}

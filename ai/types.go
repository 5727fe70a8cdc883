package ai

import (
	"github.com/konanebot/konane/konane"
	"golang.org/x/net/context"
)

// KonanePlayer chooses the next move for one side of a game. ok is
// false when the player has nothing to offer, either because it has
// no legal move or because it gave up.
type KonanePlayer interface {
	GetMove(ctx context.Context, b *konane.Board) (m konane.Move, ok bool)
}

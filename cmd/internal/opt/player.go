package opt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/konanebot/konane/ai"
	"github.com/konanebot/konane/konane"
)

// ParsePlayer builds an engine from a spec of the form "minimax",
// "minimax:DEPTH", "random" or "random:SEED". mm supplies every
// minimax option the spec does not override; seed is used by random
// players without an explicit seed.
func ParsePlayer(spec string, color konane.Color, mm *Minimax, seed uint64) (ai.KonanePlayer, error) {
	name, arg, hasArg := strings.Cut(spec, ":")
	switch name {
	case "random", "rand":
		if hasArg {
			s, err := strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("player %q: bad seed: %w", spec, err)
			}
			seed = s
		}
		return ai.NewRandom(color, seed), nil
	case "minimax":
		o := *mm
		if hasArg {
			d, err := strconv.Atoi(arg)
			if err != nil || d < 1 {
				return nil, fmt.Errorf("player %q: bad depth %q", spec, arg)
			}
			o.Depth = d
		}
		cfg, err := o.BuildConfig(color)
		if err != nil {
			return nil, err
		}
		return ai.NewMinimax(cfg), nil
	}
	return nil, fmt.Errorf("unparseable player: %q", spec)
}

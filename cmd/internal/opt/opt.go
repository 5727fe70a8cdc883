package opt

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/konanebot/konane/ai"
	"github.com/konanebot/konane/konane"
)

type Minimax struct {
	Debug     int
	Depth     int
	Threads   int
	CacheSize int
	Weights   string
}

func (o *Minimax) AddFlags(flags *flag.FlagSet) {
	flags.IntVar(&o.Debug, "debug", 0, "search debug level (shown with -log-level debug)")
	flags.IntVar(&o.Depth, "depth", 3, "minimax depth")
	flags.IntVar(&o.Threads, "threads", 1, "search the root's children on this many goroutines")
	flags.IntVar(&o.CacheSize, "cache-size", 0, "bound the evaluation cache to this many entries (0 = unbounded)")
	flags.StringVar(&o.Weights, "weights", "", "JSON-encoded evaluation weights, applied over the defaults")
}

// BuildEvaluator returns a fresh evaluator with its own cache.
func (o *Minimax) BuildEvaluator() (*ai.Evaluator, error) {
	w := ai.DefaultWeights
	if o.Weights != "" {
		if e := json.Unmarshal([]byte(o.Weights), &w); e != nil {
			return nil, fmt.Errorf("parse weights: %w", e)
		}
	}
	return ai.NewEvaluator(&w, ai.CacheSize(o.CacheSize)), nil
}

func (o *Minimax) BuildConfig(color konane.Color) (ai.MinimaxConfig, error) {
	e, err := o.BuildEvaluator()
	if err != nil {
		return ai.MinimaxConfig{}, err
	}
	return ai.MinimaxConfig{
		Color:     color,
		Depth:     o.Depth,
		Debug:     o.Debug,
		Threads:   o.Threads,
		Evaluator: e,
	}, nil
}

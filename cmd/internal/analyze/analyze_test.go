package analyze

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/konanebot/konane/ai"
	"github.com/konanebot/konane/konane"
	"github.com/konanebot/konane/notation"
)

func TestAnalyze(t *testing.T) {
	b, toMove, err := notation.ParsePosition("..bw/.bwb/bwbw/wbwb b")
	require.NoError(t, err)

	c := &Command{explain: true}
	c.mmopt.Depth = 2
	cfg, err := c.mmopt.BuildConfig(toMove)
	require.NoError(t, err)
	var out bytes.Buffer
	c.analyze(context.Background(), &out, ai.NewMinimax(cfg), b, toMove)

	s := out.String()
	assert.Contains(t, s, "[black to play]")
	assert.Contains(t, s, "total")
	assert.Contains(t, s, " moves: a3-a1")
	assert.Contains(t, s, "move=a3-a1")
	assert.Contains(t, s, "Resulting position:")
	assert.Contains(t, s, "[b.bw/.bwb/.wbw/wbwb w]")
}

func TestAnalyzeGameOver(t *testing.T) {
	b, toMove, err := notation.ParsePosition("b.../..../..w./.... w")
	require.NoError(t, err)
	c := &Command{quiet: true}
	c.mmopt.Depth = 2
	cfg, err := c.mmopt.BuildConfig(toMove)
	require.NoError(t, err)
	var out bytes.Buffer
	c.analyze(context.Background(), &out, ai.NewMinimax(cfg), b, toMove)
	assert.Contains(t, out.String(), "game over: black wins")
}

func TestApplyVariation(t *testing.T) {
	b, toMove, err := notation.ParsePosition("bwbw/wbwb/bwbw/wbwb b")
	require.NoError(t, err)
	b, toMove, err = applyVariation(b, toMove, "a1 b1")
	require.NoError(t, err)
	assert.Equal(t, konane.Black, toMove)
	assert.Equal(t, konane.Midgame, b.Phase())

	_, _, err = applyVariation(b, toMove, "a3-a1 c1")
	assert.ErrorIs(t, err, konane.ErrInvalidMove)
}

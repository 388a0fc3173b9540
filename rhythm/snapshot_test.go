package rhythm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotQueries(t *testing.T) {
	t.Parallel()

	res := TickResult{BeatNumber: 6, TimePastBeat: 0.4, SecondsPerBeat: 0.5}

	assert.InDelta(t, 0.8, res.BeatPhase(), epsilon)
	assert.InDelta(t, 0.1, res.DistanceFromBeat(), epsilon)
	assert.Equal(t, 3, res.BeatWithinMeasure(4))
	assert.False(t, res.IsDownBeat(4))
	assert.True(t, res.IsDownBeat(3))
}

func TestBeatWithinMeasureBeforeStart(t *testing.T) {
	t.Parallel()

	res := TickResult{BeatNumber: -1}
	assert.Equal(t, 4, res.BeatWithinMeasure(4))

	res.BeatNumber = -4
	assert.True(t, res.IsDownBeat(4))

	// no measure length configured
	assert.Equal(t, 1, res.BeatWithinMeasure(0))
	assert.Equal(t, 0.0, TickResult{}.BeatPhase())
}

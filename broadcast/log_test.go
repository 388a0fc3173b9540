package broadcast

import (
	"bytes"
	"os"
	"testing"

	"github.com/fogleman/ease"
	"github.com/sashimislicer/slicer/effect"
	"github.com/sashimislicer/slicer/logger"
	"github.com/sashimislicer/slicer/rhythm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	require.NoError(t, logger.SetLevel("debug"))
	defer func() {
		logger.SetOutput(os.Stderr)
		require.NoError(t, logger.SetLevel("info"))
	}()

	pulse, err := effect.NewPulse(ease.OutQuad, "#000000", "#ffffff")
	require.NoError(t, err)

	b := rhythm.NewBeatClock()
	b.Subscribe(NewLogObserver(b, pulse))
	b.LoadTempo(rhythm.TempoConfig{Name: "test", BPM: 60, BeatsPerMeasure: 3}, 0)

	b.Tick(0.5, 0.016)
	assert.NotContains(t, buf.String(), "Beat passed")

	b.Tick(1.0, 0.016)
	b.Tick(2.0, 0.016)
	b.Tick(3.0, 0.016)

	out := buf.String()
	assert.Contains(t, out, "Beat passed")
	assert.Contains(t, out, "beat=3")
	assert.Contains(t, out, "downbeat=true")
	assert.Contains(t, out, "measure=2")
	assert.Contains(t, out, "color=\"#ffffff\"")
}

package rhythm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTempoIntervals(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		config        TempoConfig
		perBeat       float64
		perSubdivison float64
	}{
		{"quarter subdivisions", TempoConfig{BPM: 120, Subdivisions: 4}, 0.5, 0.125},
		{"zero subdivisions", TempoConfig{BPM: 120}, 0.5, 0.5},
		{"slow triplets", TempoConfig{BPM: 60, Subdivisions: 3}, 1.0, 1.0 / 3},
		{"fast", TempoConfig{BPM: 128, Subdivisions: 2}, 0.46875, 0.234375},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, testCase.perBeat, testCase.config.SecondsPerBeat(), epsilon)
			assert.InDelta(t, testCase.perSubdivison, testCase.config.SecondsPerSubdivision(), epsilon)
		})
	}
}

func TestQuantize(t *testing.T) {
	t.Parallel()

	cfg := TempoConfig{BPM: 120, Subdivisions: 4, StartOffset: 0.1}

	assert.InDelta(t, 0.35, cfg.Quantize(0.33), epsilon)
	assert.InDelta(t, 0.1, cfg.Quantize(0.14), epsilon)
	assert.InDelta(t, -0.025, cfg.Quantize(-0.05), epsilon)

	// no subdivisions snaps to whole beats
	cfg.Subdivisions = 0
	assert.InDelta(t, 1.1, cfg.Quantize(0.9), epsilon)
}

func TestMarkerMath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, markerNumber(1.2, 0.5))
	assert.Equal(t, -1, markerNumber(-0.1, 0.5))
	assert.Equal(t, -2, markerNumber(-0.5000001, 0.5))
	assert.InDelta(t, 0.4, markerOffset(-0.1, 0.5), epsilon)
	assert.InDelta(t, 0.2, markerOffset(1.2, 0.5), epsilon)
	assert.Equal(t, 0.0, markerOffset(-0.5, 0.5))
}

package rhythm

import "math"

// TempoConfig describes the timing of a beatmap. A config is loaded once per level and is not mutated while it is
// loaded.
//
// BPM must be greater than zero and Subdivisions must not be negative. BeatClock does not check either; validate at
// the point where beatmaps enter the program.
type TempoConfig struct {
	// Name of the beatmap, used by consumers only.
	Name string `yaml:"name"`

	// BPM is the number of beats per minute.
	BPM float64 `yaml:"bpm"`

	// Subdivisions is the number of subdivisions per beat. Zero is treated as one.
	Subdivisions int `yaml:"subdivisions"`

	// StartOffset is added to the clock reading at load (or resync) to get the onset of beat zero. It may be negative.
	StartOffset float64 `yaml:"start_offset"`

	// BeatsPerMeasure is used for measure queries on TickResult.
	BeatsPerMeasure int `yaml:"beats_per_measure"`

	// Loop marks a beatmap that resyncs itself after LoopBeats beats.
	Loop      bool `yaml:"loop"`
	LoopBeats int  `yaml:"loop_beats"`
}

// SecondsPerBeat returns the length of one beat in seconds.
func (c TempoConfig) SecondsPerBeat() float64 {
	return 60 / c.BPM
}

// SecondsPerSubdivision returns the length of one subdivision in seconds.
func (c TempoConfig) SecondsPerSubdivision() float64 {
	return c.SecondsPerBeat() / float64(c.subdivisions())
}

func (c TempoConfig) subdivisions() int {
	if c.Subdivisions == 0 {
		return 1
	}
	return c.Subdivisions
}

// Quantize snaps a beatmap time (seconds, on the same axis as StartOffset) to the nearest subdivision.
func (c TempoConfig) Quantize(rawTime float64) float64 {
	subdiv := c.SecondsPerSubdivision()
	n := math.Round((rawTime - c.StartOffset) / subdiv)
	return c.StartOffset + n*subdiv
}

// markerNumber returns the index of the interval that contains elapsed. It floors, so times before the origin give
// negative numbers.
func markerNumber(elapsed, interval float64) int {
	return int(math.Floor(elapsed / interval))
}

// markerOffset returns how far elapsed is past the start of its interval, in [0, interval).
func markerOffset(elapsed, interval float64) float64 {
	r := math.Mod(elapsed, interval)
	if r < 0 {
		r += interval
	}
	if r >= interval {
		r = 0
	}
	return r
}

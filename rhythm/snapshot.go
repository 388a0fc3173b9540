package rhythm

import "math"

// TickResult is the state of a BeatClock as of one tick. Edge flags only describe the tick that produced them.
type TickResult struct {
	// DeltaTime is the time the clock advanced this tick. It is never negative.
	DeltaTime float64

	// CurrentTime is the clock reading after this tick.
	CurrentTime float64

	// BeatmapTime is CurrentTime relative to the onset of beat zero.
	BeatmapTime float64

	// BeatNumber is the beat containing CurrentTime. It is negative before beat zero.
	BeatNumber int

	// SubdivisionNumber is the subdivision containing CurrentTime, counted from beat zero.
	SubdivisionNumber int

	// TimePastBeat is how far CurrentTime is past the start of its beat, in [0, SecondsPerBeat).
	TimePastBeat float64

	// SecondsPerBeat is the beat length of the tempo that produced this result.
	SecondsPerBeat float64

	// CrossedBeat is true when a beat boundary was passed this tick.
	CrossedBeat bool

	// CrossedSubdivision is true when a subdivision boundary was passed this tick.
	CrossedSubdivision bool
}

// BeatPhase returns how far into the current beat the result is, in [0, 1).
func (r TickResult) BeatPhase() float64 {
	if r.SecondsPerBeat <= 0 {
		return 0
	}
	return r.TimePastBeat / r.SecondsPerBeat
}

// DistanceFromBeat determines how far in time the result is from its closest beat.
func (r TickResult) DistanceFromBeat() float64 {
	return math.Min(r.TimePastBeat, r.SecondsPerBeat-r.TimePastBeat)
}

// BeatWithinMeasure returns the beat number relative to the start of its measure, starting at 1.
func (r TickResult) BeatWithinMeasure(beatsPerMeasure int) int {
	if beatsPerMeasure <= 0 {
		return 1
	}
	b := r.BeatNumber % beatsPerMeasure
	if b < 0 {
		b += beatsPerMeasure
	}
	return b + 1
}

// IsDownBeat checks whether the current beat is the first beat in its measure.
func (r TickResult) IsDownBeat(beatsPerMeasure int) bool {
	return r.BeatWithinMeasure(beatsPerMeasure) == 1
}

package rhythm

// Observer receives the results of BeatClock ticks.
type Observer interface {
	// BeatPassed is called when a tick crosses into a new beat.
	BeatPassed(beatNumber int)

	// Ticked is called after every tick, following BeatPassed if a beat was crossed.
	Ticked(result TickResult)
}

// ObserverFuncs adapts plain functions to an Observer. Nil functions are skipped.
type ObserverFuncs struct {
	OnBeat func(beatNumber int)
	OnTick func(result TickResult)
}

func (f ObserverFuncs) BeatPassed(beatNumber int) {
	if f.OnBeat != nil {
		f.OnBeat(beatNumber)
	}
}

func (f ObserverFuncs) Ticked(result TickResult) {
	if f.OnTick != nil {
		f.OnTick(result)
	}
}

package rhythm

import (
	"github.com/sashimislicer/slicer/logger"
	"github.com/sirupsen/logrus"
)

// BeatClock turns readings from a hardware audio clock into beat and subdivision crossings. It tolerates a source that
// stalls (returns the same reading twice) or goes backwards, and can be rebased with Resync when a level loops.
//
// BeatClock is not safe for concurrent use. Exactly one goroutine drives Tick, once per frame; ticking twice in one
// frame advances the clock twice. Other components read the TickResult handed to observers or returned by Last.
type BeatClock struct {
	tempo        TempoConfig
	loaded       bool
	intervalBeat float64
	intervalSub  float64

	startTime   float64
	currentTime float64
	lastTime    float64
	lastRaw     float64

	last TickResult

	observers []Observer
	log       *logrus.Entry
}

// NewBeatClock creates an unloaded BeatClock. Tick and Resync do nothing until LoadTempo is called.
func NewBeatClock() *BeatClock {
	return &BeatClock{
		log: logger.GetProjectLogger().WithField("component", "beatclock"),
	}
}

// Subscribe registers an observer. Observers are called synchronously, in registration order, at the end of every
// tick.
func (b *BeatClock) Subscribe(o Observer) {
	b.observers = append(b.observers, o)
}

// LoadTempo replaces the tempo and rebases beat zero to clockNow + StartOffset.
func (b *BeatClock) LoadTempo(config TempoConfig, clockNow float64) {
	if !b.loaded {
		// nothing meaningful in the clock state yet, so start it at the load reading
		b.currentTime = clockNow
		b.loaded = true
	}

	b.tempo = config
	b.intervalBeat = config.SecondsPerBeat()
	b.intervalSub = config.SecondsPerSubdivision()
	b.startTime = clockNow + config.StartOffset
	b.lastTime = b.currentTime
	b.lastRaw = clockNow

	b.log.WithFields(logrus.Fields{
		"beatmap":      config.Name,
		"bpm":          config.BPM,
		"subdivisions": config.Subdivisions,
		"start_time":   b.startTime,
	}).Info("Tempo loaded")
}

// Tick advances the clock to clockNow and reports the beat and subdivision crossings since the previous tick.
//
// If clockNow equals the previous reading the source is assumed to have stalled and the clock advances by
// fallbackDelta instead. If clockNow is behind the previous reading the clock holds its current time.
func (b *BeatClock) Tick(clockNow, fallbackDelta float64) TickResult {
	if !b.loaded {
		return TickResult{}
	}

	var newTime float64
	switch {
	case clockNow == b.lastRaw:
		newTime = b.currentTime + fallbackDelta
		b.log.WithField("clock", clockNow).Trace("Clock stalled, estimating with frame delta")
	case clockNow < b.lastRaw:
		newTime = b.currentTime
		b.log.WithFields(logrus.Fields{"clock": clockNow, "previous": b.lastRaw}).Debug("Clock went backwards, holding")
	default:
		newTime = clockNow
	}
	b.lastRaw = clockNow

	// a reading that recovers from a stall can still be behind the estimate
	if newTime < b.currentTime {
		newTime = b.currentTime
	}

	delta := newTime - b.currentTime
	b.lastTime = b.currentTime
	b.currentTime = newTime

	res := b.calculate(delta)
	b.last = res
	b.notify(res)
	return res
}

// Resync rebases beat zero to clockNow + StartOffset without discarding elapsed time, then ticks once so the beat
// numbers match the new origin. fallbackDelta bridges a stalled source exactly as in Tick; pass 0 when the frame has
// already ticked. Resync does not suppress crossings; debouncing after a resync is up to the caller.
func (b *BeatClock) Resync(clockNow, fallbackDelta float64) TickResult {
	if !b.loaded {
		return TickResult{}
	}

	b.log.WithField("clock", clockNow).Info("Resyncing to new start time")
	b.startTime = clockNow + b.tempo.StartOffset
	b.lastTime = b.currentTime
	return b.Tick(clockNow, fallbackDelta)
}

func (b *BeatClock) calculate(delta float64) TickResult {
	elapsed := b.currentTime - b.startTime
	lastElapsed := b.lastTime - b.startTime

	beat := markerNumber(elapsed, b.intervalBeat)
	lastBeat := markerNumber(lastElapsed, b.intervalBeat)
	subdiv := markerNumber(elapsed, b.intervalSub)
	lastSubdiv := markerNumber(lastElapsed, b.intervalSub)

	return TickResult{
		DeltaTime:          delta,
		CurrentTime:        b.currentTime,
		BeatmapTime:        elapsed,
		BeatNumber:         beat,
		SubdivisionNumber:  subdiv,
		TimePastBeat:       markerOffset(elapsed, b.intervalBeat),
		SecondsPerBeat:     b.intervalBeat,
		CrossedBeat:        beat > lastBeat,
		CrossedSubdivision: subdiv > lastSubdiv,
	}
}

func (b *BeatClock) notify(res TickResult) {
	for _, o := range b.observers {
		if res.CrossedBeat {
			o.BeatPassed(res.BeatNumber)
		}
		o.Ticked(res)
	}
}

// Loaded reports whether a tempo has been loaded.
func (b *BeatClock) Loaded() bool {
	return b.loaded
}

// Tempo returns the loaded tempo.
func (b *BeatClock) Tempo() TempoConfig {
	return b.tempo
}

// Last returns the result of the most recent tick.
func (b *BeatClock) Last() TickResult {
	return b.last
}

// CurrentTime returns the clock reading as of the most recent tick.
func (b *BeatClock) CurrentTime() float64 {
	return b.currentTime
}

// CurrentBeatmapTime returns the time since beat zero. It is negative before the first beat.
func (b *BeatClock) CurrentBeatmapTime() float64 {
	return b.currentTime - b.startTime
}

// DeltaTime returns how far the most recent tick advanced the clock.
func (b *BeatClock) DeltaTime() float64 {
	return b.last.DeltaTime
}

// BeatNumber returns the beat containing the current time.
func (b *BeatClock) BeatNumber() int {
	return b.last.BeatNumber
}

func (b *BeatClock) TimePastBeat() float64 {
	return b.last.TimePastBeat
}

// SecondsPerBeat returns the beat length of the loaded tempo.
func (b *BeatClock) SecondsPerBeat() float64 {
	return b.intervalBeat
}

// CrossedBeat reports whether the most recent tick crossed a beat.
func (b *BeatClock) CrossedBeat() bool {
	return b.last.CrossedBeat
}

func (b *BeatClock) CrossedSubdivision() bool {
	return b.last.CrossedSubdivision
}

package broadcast

import (
	"github.com/sashimislicer/slicer/effect"
	"github.com/sashimislicer/slicer/logger"
	"github.com/sashimislicer/slicer/rhythm"
	"github.com/sirupsen/logrus"
)

// TempoReader gives the tempo in effect, satisfied by *rhythm.BeatClock and *conductor.Conductor
type TempoReader interface {
	Tempo() rhythm.TempoConfig
}

// LogObserver logs beat crossings and sync broadcasts
type LogObserver struct {
	tempo TempoReader
	pulse *effect.Pulse
	log   *logrus.Entry
}

// NewLogObserver creates a LogObserver reading measure information from tempo
func NewLogObserver(tempo TempoReader, pulse *effect.Pulse) *LogObserver {
	return &LogObserver{
		tempo: tempo,
		pulse: pulse,
		log:   logger.GetProjectLogger().WithField("component", "beats"),
	}
}

// BeatPassed does nothing; beats are logged from Ticked, which has the whole result
func (l *LogObserver) BeatPassed(int) {}

func (l *LogObserver) Ticked(result rhythm.TickResult) {
	if !result.CrossedBeat {
		return
	}

	beatsPerMeasure := l.tempo.Tempo().BeatsPerMeasure
	fields := logrus.Fields{
		"beat":      result.BeatNumber,
		"measure":   result.BeatWithinMeasure(beatsPerMeasure),
		"downbeat":  result.IsDownBeat(beatsPerMeasure),
		"time":      result.CurrentTime,
		"off_by_ms": result.DistanceFromBeat() * 1000,
	}
	if l.pulse != nil {
		fields["color"] = l.pulse.ColorFor(result).Hex()
	}
	l.log.WithFields(fields).Debug("Beat passed")
}

func (l *LogObserver) SyncTime(currentTime float64) {
	l.log.WithField("time", currentTime).Trace("Sync time")
}

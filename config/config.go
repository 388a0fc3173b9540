package config

import (
	"github.com/sashimislicer/slicer/logger"
	"github.com/sashimislicer/slicer/rhythm"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	// DefaultFPS is the rate the conductor ticks the beat clock at
	DefaultFPS = 120

	// DefaultBeatmap is loaded when nothing else is selected
	DefaultBeatmap = "tutorial"

	DefaultOSCAddress = "127.0.0.1:9000"
)

// SlicerConfig represents options that configure the global behavior of the program
type SlicerConfig struct {
	// Project logger
	Logger *logrus.Entry

	// LogLevel is applied to the project logger by main
	LogLevel string

	// Beatmaps are the known beatmaps keyed by name
	Beatmaps map[string]rhythm.TempoConfig

	// FPS is the number of clock ticks per second
	FPS int

	// SettlingTicks is the number of ticks a sync time is broadcast for after a resync. Zero broadcasts until the next
	// load or resync.
	SettlingTicks int

	// OSCAddress is where beat and sync messages are sent. Empty disables OSC output.
	OSCAddress string
}

// NewSlicerConfig creates a new SlicerConfig with reasonable defaults for real usage
func NewSlicerConfig() (SlicerConfig, error) {
	beatmaps := initializeBeatmaps()
	for _, b := range beatmaps {
		if err := Validate(b); err != nil {
			return SlicerConfig{}, err
		}
	}

	return SlicerConfig{
		Logger:     logger.GetProjectLogger(),
		LogLevel:   "info",
		Beatmaps:   beatmaps,
		FPS:        DefaultFPS,
		OSCAddress: DefaultOSCAddress,
	}, nil
}

// Beatmap looks up a beatmap by name
func (c SlicerConfig) Beatmap(name string) (rhythm.TempoConfig, error) {
	b, ok := c.Beatmaps[name]
	if !ok {
		return rhythm.TempoConfig{}, UnknownBeatmapError{Name: name, Known: c.BeatmapNames()}
	}
	return b, nil
}

// BeatmapNames returns the names of all known beatmaps in sorted order
func (c SlicerConfig) BeatmapNames() []string {
	names := maps.Keys(c.Beatmaps)
	slices.Sort(names)
	return names
}

// Merge adds the given beatmaps, replacing any with the same name
func (c *SlicerConfig) Merge(beatmaps map[string]rhythm.TempoConfig) {
	if c.Beatmaps == nil {
		c.Beatmaps = make(map[string]rhythm.TempoConfig, len(beatmaps))
	}
	maps.Copy(c.Beatmaps, beatmaps)
}

func initializeBeatmaps() map[string]rhythm.TempoConfig {
	return map[string]rhythm.TempoConfig{
		"tutorial": {
			Name:            "tutorial",
			BPM:             100,
			Subdivisions:    2,
			StartOffset:     1.0,
			BeatsPerMeasure: 4,
			Loop:            true,
			LoopBeats:       32,
		},
		"tuna-run": {
			Name:            "tuna-run",
			BPM:             128,
			Subdivisions:    4,
			StartOffset:     0.5,
			BeatsPerMeasure: 4,
		},
		"salmon-waltz": {
			Name:            "salmon-waltz",
			BPM:             144,
			Subdivisions:    3,
			StartOffset:     0.25,
			BeatsPerMeasure: 3,
		},
	}
}

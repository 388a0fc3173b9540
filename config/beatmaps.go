package config

import (
	"os"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/gruntwork-io/go-commons/files"
	"github.com/sashimislicer/slicer/rhythm"
	"gopkg.in/yaml.v3"
)

// beatmapCatalog is the layout of a beatmap file:
//
//	beatmaps:
//	  - name: tuna-run
//	    bpm: 128
//	    subdivisions: 4
//	    start_offset: 0.5
type beatmapCatalog struct {
	Beatmaps []rhythm.TempoConfig `yaml:"beatmaps"`
}

// LoadBeatmaps reads a YAML beatmap catalog from path
func LoadBeatmaps(path string) (map[string]rhythm.TempoConfig, error) {
	if !files.FileExists(path) {
		return nil, errors.WithStackTrace(os.ErrNotExist)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStackTrace(err)
	}
	return ParseBeatmaps(data)
}

// ParseBeatmaps decodes and validates a YAML beatmap catalog
func ParseBeatmaps(data []byte) (map[string]rhythm.TempoConfig, error) {
	var catalog beatmapCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, errors.WithStackTrace(err)
	}

	out := make(map[string]rhythm.TempoConfig, len(catalog.Beatmaps))
	for _, b := range catalog.Beatmaps {
		if err := Validate(b); err != nil {
			return nil, err
		}
		if _, dup := out[b.Name]; dup {
			return nil, errors.WithStackTrace(InvalidBeatmapError{Name: b.Name, Reason: "defined more than once"})
		}
		out[b.Name] = b
	}
	return out, nil
}

// Validate checks the preconditions a beat clock places on a tempo
func Validate(b rhythm.TempoConfig) error {
	switch {
	case b.Name == "":
		return errors.WithStackTrace(InvalidBeatmapError{Reason: "missing name"})
	case b.BPM <= 0:
		return errors.WithStackTrace(InvalidBeatmapError{Name: b.Name, Reason: "bpm must be positive"})
	case b.Subdivisions < 0:
		return errors.WithStackTrace(InvalidBeatmapError{Name: b.Name, Reason: "subdivisions must not be negative"})
	case b.BeatsPerMeasure < 0:
		return errors.WithStackTrace(InvalidBeatmapError{Name: b.Name, Reason: "beats per measure must not be negative"})
	case b.Loop && b.LoopBeats <= 0:
		return errors.WithStackTrace(InvalidBeatmapError{Name: b.Name, Reason: "looping beatmap needs loop_beats"})
	}
	return nil
}

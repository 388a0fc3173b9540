package config

import (
	"fmt"
	"strings"
)

// InvalidBeatmapError is returned when a beatmap's tempo can't drive a beat clock
type InvalidBeatmapError struct {
	Name   string
	Reason string
}

func (err InvalidBeatmapError) Error() string {
	return fmt.Sprintf("invalid beatmap %q: %s", err.Name, err.Reason)
}

// UnknownBeatmapError is returned when a beatmap is looked up that isn't configured
type UnknownBeatmapError struct {
	Name  string
	Known []string
}

func (err UnknownBeatmapError) Error() string {
	return fmt.Sprintf("unknown beatmap %q (known: %s)", err.Name, strings.Join(err.Known, ", "))
}

package utils

import (
	"math"
	"time"
)

// Clamp limits t to the range between min and max, in either order.
func Clamp(t, min, max float64) float64 {
	min, max = math.Min(min, max), math.Max(min, max)
	return math.Max(math.Min(t, max), min)
}

// FrameInterval returns the time between frames at n frames per second.
func FrameInterval(n int) time.Duration {
	return time.Second / time.Duration(n)
}

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.5, Clamp(0.5, 0, 1))
	require.Equal(t, 1.0, Clamp(3, 0, 1))
	require.Equal(t, 0.0, Clamp(-2, 1, 0))
}

func TestFrameInterval(t *testing.T) {
	t.Parallel()

	require.Equal(t, 25*time.Millisecond, FrameInterval(40))
	require.Equal(t, time.Second/120, FrameInterval(120))
}

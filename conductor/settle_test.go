package conductor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettlingWindowCountsDown(t *testing.T) {
	t.Parallel()

	w := NewSettlingWindow(3)
	assert.False(t, w.Consume())

	w.Arm()
	assert.True(t, w.Consume())
	assert.True(t, w.Consume())
	assert.True(t, w.Open())
	assert.True(t, w.Consume())
	assert.False(t, w.Open())
	assert.False(t, w.Consume())

	// arming again restarts the countdown
	w.Arm()
	w.Consume()
	w.Arm()
	assert.True(t, w.Consume())
	assert.True(t, w.Consume())
	assert.True(t, w.Consume())
	assert.False(t, w.Consume())
}

func TestSettlingWindowUntilCleared(t *testing.T) {
	t.Parallel()

	w := NewSettlingWindow(0)
	w.Arm()
	for i := 0; i < 1000; i++ {
		assert.True(t, w.Consume())
	}

	w.Clear()
	assert.False(t, w.Open())
	assert.False(t, w.Consume())
}

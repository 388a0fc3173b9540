package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, GetLogger().GetLevel())

	require.Error(t, SetLevel("loud"))
	assert.Equal(t, logrus.DebugLevel, GetLogger().GetLevel())

	require.NoError(t, SetLevel("info"))
}

func TestProjectLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(logrus.StandardLogger().Out)

	GetProjectLogger().WithField("beat", 3).Info("Beat passed")

	assert.Contains(t, buf.String(), "name=slicer")
	assert.Contains(t, buf.String(), "beat=3")
	assert.Contains(t, buf.String(), "Beat passed")
}

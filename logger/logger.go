package logger

import (
	"io"
	"sync"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/sirupsen/logrus"
)

const projectName = "slicer"

var (
	projectLogger *logrus.Logger
	initOnce      sync.Once
)

func base() *logrus.Logger {
	initOnce.Do(func() {
		projectLogger = logrus.New()
		projectLogger.SetLevel(logrus.InfoLevel)
		projectLogger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	})
	return projectLogger
}

// GetProjectLogger returns the shared project logger
func GetProjectLogger() *logrus.Entry {
	return base().WithField("name", projectName)
}

// GetLogger returns the underlying logger, for callers that need to configure it
func GetLogger() *logrus.Logger {
	return base()
}

// SetLevel sets the project log level from its name, e.g. "debug"
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.WithStackTrace(err)
	}
	base().SetLevel(lvl)
	return nil
}

// SetOutput redirects the project logger
func SetOutput(w io.Writer) {
	base().SetOutput(w)
}

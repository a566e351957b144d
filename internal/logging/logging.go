// Package logging builds the process logger.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

const FormatJSON = "json"

// New returns a logger. We only have 2 levels: debug for developers and info for
// whoever runs the sign-in.
func New(debug bool, format string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	if out != nil {
		log.SetOutput(out)
	}
	if debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	if format == FormatJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	return log
}

// Discard returns an entry dropping everything.
func Discard() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

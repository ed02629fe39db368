// Package gblog provides the one shared logrus logger used by every
// core component to report data-integrity anomalies: a write to a
// read-only region, a read from an unusable address, a rejected
// cartridge. It is not a general application logger - the CPU and
// Tile packages never touch it, since their failure mode is a panic,
// not a log line.
package gblog

import "github.com/sirupsen/logrus"

// Logger is configured once, identically for every caller, so the
// core's diagnostic output from different components still reads
// like a single stream.
var Logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

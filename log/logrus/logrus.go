// Package logrus adapts a *logrus.Entry to nscache.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/nscache"
)

var _ nscache.Logger = Logger{}

type Logger struct{ E *logrus.Entry }

// New wraps l with component=nscache. A nil l uses logrus.StandardLogger().
func New(l *logrus.Logger) Logger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return Logger{E: l.WithField("component", "nscache")}
}

func (l Logger) Debug(msg string, f nscache.Fields) { l.with(f).Debug(msg) }
func (l Logger) Info(msg string, f nscache.Fields)  { l.with(f).Info(msg) }
func (l Logger) Warn(msg string, f nscache.Fields)  { l.with(f).Warn(msg) }
func (l Logger) Error(msg string, f nscache.Fields) { l.with(f).Error(msg) }

func (l Logger) with(f nscache.Fields) *logrus.Entry {
	if len(f) == 0 {
		return l.E
	}
	if err, ok := f["err"].(error); ok {
		rest := make(logrus.Fields, len(f))
		for k, v := range f {
			if k != "err" {
				rest[k] = v
			}
		}
		return l.E.WithError(err).WithFields(rest)
	}
	return l.E.WithFields(logrus.Fields(f))
}

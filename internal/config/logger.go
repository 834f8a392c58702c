package config

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger
var Log = logrus.New()

type logFieldsKey struct{}

// InitLogger configures level and output format
func InitLogger(level string, production bool) {
	Log.SetOutput(os.Stdout)
	if production {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)
}

// WithLogFields returns a context whose logger carries the given fields
// in addition to any already attached.
func WithLogFields(ctx context.Context, fields logrus.Fields) context.Context {
	merged := logrus.Fields{}
	if existing, ok := ctx.Value(logFieldsKey{}).(logrus.Fields); ok {
		for k, v := range existing {
			merged[k] = v
		}
	}
	for k, v := range fields {
		merged[k] = v
	}
	return context.WithValue(ctx, logFieldsKey{}, merged)
}

// WithContext returns a log entry scoped to the request in ctx
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(Log)
	if ctx == nil {
		return entry
	}
	if fields, ok := ctx.Value(logFieldsKey{}).(logrus.Fields); ok {
		entry = entry.WithFields(fields)
	}
	return entry
}

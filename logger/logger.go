package logger

import (
	"go.uber.org/zap"
)

var Log = zap.NewNop()

// NewLogger builds the process logger and installs it as Log. Debug mode uses
// zap's human-readable development encoder.
func NewLogger(debug bool) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	Log = l
	return l
}

package logger

import "go.uber.org/zap"

var log *zap.Logger

// Init builds the process logger. Call once at startup.
func Init() error {
	l, err := zap.NewProduction()
	if err != nil {
		return err
	}
	log = l
	return nil
}

// L returns the process logger, or a no-op logger when Init was not called
// (tests, library use).
func L() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

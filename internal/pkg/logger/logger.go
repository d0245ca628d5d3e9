package logger

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

var global = zap.Must(zap.NewProduction()).Sugar()

// Init replaces the global logger. Called once from main.
func Init(l *zap.Logger) {
	global = l.Sugar()
}

func Debugf(_ context.Context, format string, args ...any) {
	global.Debugf(format, args...)
}

func Infof(_ context.Context, format string, args ...any) {
	global.Infof(format, args...)
}

func Warnf(_ context.Context, format string, args ...any) {
	global.Warnf(format, args...)
}

func Errorf(_ context.Context, format string, args ...any) {
	global.Errorf(format, args...)
}

func Fatal(_ context.Context, err error) {
	if err == nil {
		return
	}
	global.Fatal(fmt.Sprintf("fatal: %v", err))
}

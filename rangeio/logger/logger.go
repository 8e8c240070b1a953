package logger

import (
	"go.uber.org/zap"
)

var _logger = zap.NewNop()

// Init replaces the no-op default with a production logger. Library users
// that want log output call this once at startup.
func Init() {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	_logger = l
}

func Sync() {
	_ = _logger.Sync()
}

func Error(message string, field ...zap.Field) {
	_logger.Error(message, field...)
}

func Warn(message string, field ...zap.Field) {
	_logger.Warn(message, field...)
}

func Info(message string, field ...zap.Field) {
	_logger.Info(message, field...)
}

func Debug(message string, field ...zap.Field) {
	_logger.Debug(message, field...)
}

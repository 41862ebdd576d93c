package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fredriick/Electrify-sub009/internal/pkg/config"
)

// ErrNotInitialized is returned by GetLogger before a successful InitLogger
var ErrNotInitialized = errors.New("logger not initialized: call InitLogger first")

// process-wide logger shared by the REST API, the CLI and the background jobs
var (
	shared     Logger
	sharedErr  error
	sharedOnce sync.Once
)

// InitLogger builds the shared logger from settings. Only the first call has an effect.
func InitLogger(settings *config.LoggerSettings) error {
	sharedOnce.Do(func() {
		shared, sharedErr = build(settings)
	})
	return sharedErr
}

// GetLogger returns the shared logger.
func GetLogger() (Logger, error) {
	if shared == nil {
		return nil, ErrNotInitialized
	}
	return shared, nil
}

func build(settings *config.LoggerSettings) (Logger, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}

	switch settings.LogType {
	case config.LogTypeFile:
		return NewFileLogger(settings.LogLevel, settings.FilePath, settings.MaxSize, settings.MaxBackups, settings.MaxAge), nil
	case config.LogTypeConsole:
		return NewConsoleLogger(settings.LogLevel), nil
	}
	return nil, fmt.Errorf("unsupported log type: %s", settings.LogType)
}

// critical has no slog level of its own
var levels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: slog.LevelError,
}

func parseLevel(level string) slog.Level {
	if l, ok := levels[level]; ok {
		return l
	}
	return slog.LevelInfo
}

// formatArgs joins log arguments the way fmt.Sprint does, so
// log.Info("Created order with id ", id) reads naturally.
func formatArgs(args ...interface{}) string {
	return fmt.Sprint(args...)
}

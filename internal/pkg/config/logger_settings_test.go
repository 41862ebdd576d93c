//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rotatingFileLogger() LoggerSettings {
	return LoggerSettings{
		LogLevel:   LogLevelWarning,
		LogType:    LogTypeFile,
		FilePath:   "/var/log/electrify/api.log",
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     30,
	}
}

func TestLoggerSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *LoggerSettings)
		wantErr string
	}{
		{"rotating file logger", func(s *LoggerSettings) {}, ""},
		{"console ignores rotation", func(s *LoggerSettings) {
			s.LogType, s.FilePath, s.MaxSize, s.MaxBackups, s.MaxAge = LogTypeConsole, "", 0, 0, 0
		}, ""},
		{"level required", func(s *LoggerSettings) { s.LogLevel = "" }, "LogLevel"},
		{"unknown level", func(s *LoggerSettings) { s.LogLevel = "verbose" }, "LogLevel"},
		{"unknown type", func(s *LoggerSettings) { s.LogType = "syslog" }, "LogType"},
		{"file path required", func(s *LoggerSettings) { s.FilePath = "" }, "file path"},
		{"max size above 100 MB", func(s *LoggerSettings) { s.MaxSize = 101 }, "max size"},
		{"no backups", func(s *LoggerSettings) { s.MaxBackups = 0 }, "max backups"},
		{"max age above a year", func(s *LoggerSettings) { s.MaxAge = 400 }, "max age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := rotatingFileLogger()
			tt.mutate(&settings)

			err := settings.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

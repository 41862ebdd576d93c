package config

// Accepted values of LoggerSettings.LogLevel, from most to least verbose
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Accepted values of LoggerSettings.LogType
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file" // rotated by lumberjack
)

// Rotation bounds for the file logger
const (
	MaxLogFileSizeMB = 100
	MaxLogBackups    = 10
	MaxLogAgeDays    = 365
)

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fredriick/Electrify-sub009/internal/pkg/config"
	"github.com/fredriick/Electrify-sub009/internal/pkg/logger"

	"github.com/tidwall/gjson"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}
	return loggerInstance, nil
}

// readJSONFile loads a JSON document exported from the admin console
func readJSONFile(path string) (gjson.Result, error) {
	if path == "" {
		return gjson.Result{}, fmt.Errorf("a rates file is required")
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, fmt.Errorf("%s is not valid JSON", path)
	}
	return gjson.ParseBytes(data), nil
}

package utils

import (
	"log"

	"careplus/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global logger instance
var Logger *zap.Logger

// logLevel resolves the level from LOG_LEVEL, falling back to the
// environment default when unset or unparseable.
func logLevel() zapcore.Level {
	fallback := zapcore.DebugLevel
	if config.IsProduction() {
		fallback = zapcore.InfoLevel
	}
	configured := config.AppConfig.LogLevel
	if configured == "" {
		return fallback
	}
	level, err := zapcore.ParseLevel(configured)
	if err != nil {
		return fallback
	}
	return level
}

// InitializeLogger sets up the logging configuration
func InitializeLogger() {
	var cfg zap.Config

	if config.IsProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(logLevel())

	// Create logger
	var err error
	Logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}

package utils

import (
	"testing"

	"careplus/config"

	"github.com/stretchr/testify/assert"
)

func TestLogLevelFromConfig(t *testing.T) {
	orig := config.AppConfig
	defer func() { config.AppConfig = orig }()

	config.AppConfig.Env = "development"

	config.AppConfig.LogLevel = "warn"
	assert.Equal(t, "warn", logLevel().String())

	config.AppConfig.LogLevel = "not-a-level"
	assert.Equal(t, "debug", logLevel().String())

	config.AppConfig.LogLevel = ""
	config.AppConfig.Env = "production"
	assert.Equal(t, "info", logLevel().String())
}

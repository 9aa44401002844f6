package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel parses Logging.Level; an empty level means info.
func (c *Config) LogLevel() (zapcore.Level, error) {
	if c.Logging.Level == "" {
		return zapcore.InfoLevel, nil
	}

	return zapcore.ParseLevel(c.Logging.Level)
}

// NewLogger builds a sugared zap logger from the Logging section.
func (c *Config) NewLogger() (*zap.SugaredLogger, error) {
	level, err := c.LogLevel()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if c.Logging.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}

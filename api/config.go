package api

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvListen   = "H264PROFILE_LISTEN"
	EnvLogLevel = "H264PROFILE_LOG_LEVEL"
	EnvPprof    = "H264PROFILE_PPROF"
)

const defaultListen = "0.0.0.0:8080"

// Config holds the settings of the HTTP negotiation service.
type Config struct {
	Listen   string
	LogLevel logrus.Level
	Pprof    bool
}

// ConfigFromEnv reads Config from the environment, using defaults for unset variables.
func ConfigFromEnv() (cfg Config, err error) {
	cfg = Config{
		Listen:   defaultListen,
		LogLevel: logrus.InfoLevel,
		Pprof:    false,
	}

	if v := os.Getenv(EnvListen); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		if cfg.LogLevel, err = logrus.ParseLevel(v); err != nil {
			return cfg, fmt.Errorf("api: %s: %w", EnvLogLevel, err)
		}
	}
	if v := os.Getenv(EnvPprof); v != "" {
		if cfg.Pprof, err = strconv.ParseBool(v); err != nil {
			return cfg, fmt.Errorf("api: %s: %w", EnvPprof, err)
		}
	}
	return cfg, nil
}

// Package config reads process settings from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Port               string
	SchemeRegistryURL  string
	SchemeFile         string
	SchemeFetchTimeout time.Duration
	LogLevel           logrus.Level
	LogFormat          string
}

var logLevels = map[string]logrus.Level{
	"trace": logrus.TraceLevel,
	"debug": logrus.DebugLevel,
	"info":  logrus.InfoLevel,
	"warn":  logrus.WarnLevel,
	"error": logrus.ErrorLevel,
}

// FromEnv builds a Config, applying defaults for unset variables.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return def
	}

	c := Config{
		Port:              get("PORT", "8080"),
		SchemeRegistryURL: get("SCHEME_REGISTRY_URL", ""),
		SchemeFile:        get("SCHEME_FILE", ""),
		LogFormat:         get("LOG_FORMAT", "text"),
	}

	timeout, err := time.ParseDuration(get("SCHEME_FETCH_TIMEOUT", "2s"))
	if err != nil || timeout <= 0 {
		return Config{}, fmt.Errorf("SCHEME_FETCH_TIMEOUT: invalid duration %q", get("SCHEME_FETCH_TIMEOUT", ""))
	}
	c.SchemeFetchTimeout = timeout

	level, ok := logLevels[get("LOG_LEVEL", "info")]
	if !ok {
		return Config{}, fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error")
	}
	c.LogLevel = level

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return Config{}, fmt.Errorf("LOG_FORMAT must be text or json")
	}
	return c, nil
}

// SetupLogging applies the level and format to the global logrus logger.
func (c Config) SetupLogging() {
	logrus.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.0000",
	})
}

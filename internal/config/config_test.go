package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	c, err := fromLookup(lookup(nil))
	require.NoError(t, err)
	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, "", c.SchemeRegistryURL)
	assert.Equal(t, 2*time.Second, c.SchemeFetchTimeout)
	assert.Equal(t, logrus.InfoLevel, c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
}

func TestOverrides(t *testing.T) {
	c, err := fromLookup(lookup(map[string]string{
		"PORT":                 "9090",
		"SCHEME_REGISTRY_URL":  "http://schemes.local",
		"SCHEME_FILE":          "/etc/payroll/scheme.yaml",
		"SCHEME_FETCH_TIMEOUT": "500ms",
		"LOG_LEVEL":            "debug",
		"LOG_FORMAT":           "json",
	}))
	require.NoError(t, err)
	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, "http://schemes.local", c.SchemeRegistryURL)
	assert.Equal(t, "/etc/payroll/scheme.yaml", c.SchemeFile)
	assert.Equal(t, 500*time.Millisecond, c.SchemeFetchTimeout)
	assert.Equal(t, logrus.DebugLevel, c.LogLevel)
	assert.Equal(t, "json", c.LogFormat)
}

func TestInvalidValues(t *testing.T) {
	for key, value := range map[string]string{
		"SCHEME_FETCH_TIMEOUT": "soon",
		"LOG_LEVEL":            "loud",
		"LOG_FORMAT":           "xml",
	} {
		_, err := fromLookup(lookup(map[string]string{key: value}))
		assert.Error(t, err, key)
	}
}

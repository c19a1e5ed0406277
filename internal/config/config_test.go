package config

import (
	"testing"

	"github.com/richard-senior/mcp-geometry/internal/logger"
	"github.com/richard-senior/mcp-geometry/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())
	assert.Equal(t, "mcp___", c.ToolPrefix)
	assert.Equal(t, "2024-11-05", c.DefaultProtocolVersion)
	assert.Equal(t, 0.5, c.DefaultMiddleRatio)
	assert.Equal(t, 10000, c.MaxSamplePoints)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"empty name", func(c *Config) { c.ServerName = "" }},
		{"bad level", func(c *Config) { c.LogLevel = "chatty" }},
		{"bad output", func(c *Config) { c.LogOutput = 'z' }},
		{"file output without file", func(c *Config) { c.LogOutput = 'b'; c.LogFile = "" }},
		{"negative accuracy", func(c *Config) { c.Accuracy = -1 }},
		{"zero sample distance", func(c *Config) { c.MaxSampleDistance = 0 }},
		{"one sample point", func(c *Config) { c.MaxSamplePoints = 1 }},
		{"sample points over the geometry limit", func(c *Config) { c.MaxSamplePoints = geometry.SampleLimit + 1 }},
		{"ratio too big", func(c *Config) { c.DefaultMiddleRatio = 1.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestApplyLoggingToFile(t *testing.T) {
	c := DefaultConfig()
	c.LogOutput = 'f'
	c.LogFile = t.TempDir() + "/test.log"
	c.LogLevel = "debug"
	require.NoError(t, c.ApplyLogging())
	t.Cleanup(func() { _ = logger.SetLogOutput('c') })
}

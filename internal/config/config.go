package config

import (
	"fmt"

	"github.com/richard-senior/mcp-geometry/internal/logger"
	"github.com/richard-senior/mcp-geometry/pkg/geometry"
)

// Config contains every setting the server and CLI read at start up.
// Values come from DefaultConfig and are then overridden by command line flags.
type Config struct {
	// === SERVER ===
	ServerName             string // Reported in the initialize response
	ServerVersion          string // Reported in the initialize response
	DefaultProtocolVersion string // Used when the client does not ask for one (default: "2024-11-05")
	ToolPrefix             string // Prepended to every registered tool name (default: "mcp___")

	// === LOGGING ===
	LogLevel     string // debug, info, inform, highlight, warn, error or fatal
	LogOutput    rune   // 'c' console, 'f' file, 'b' both
	LogFile      string // Used when LogOutput is 'f' or 'b'
	ShowDateTime bool   // Prefix log lines with the date and time

	// === GEOMETRY ===
	Accuracy           float64 // Distance under which two points are considered equal (default: 0.0001)
	MaxSampleDistance  float64 // Default spacing of points when pointalising paths (default: 1.0)
	MaxSamplePoints    int     // Most points one pointalise request may produce (default: 10000)
	DefaultMiddleRatio float64 // Where along a path 'middle' lands when no ratio is given (default: 0.5)
}

// DefaultConfig returns the default configuration with all standard values
func DefaultConfig() *Config {
	return &Config{
		ServerName:             "mcp-geometry",
		ServerVersion:          "1.0.0",
		DefaultProtocolVersion: "2024-11-05",
		ToolPrefix:             "mcp___",

		LogLevel:     "info",
		LogOutput:    'f',
		LogFile:      logger.DefaultLogFile,
		ShowDateTime: true,

		Accuracy:           0.0001,
		MaxSampleDistance:  1.0,
		MaxSamplePoints:    10000,
		DefaultMiddleRatio: 0.5,
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.ServerName == "" {
		return fmt.Errorf("server name cannot be empty")
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogOutput {
	case 'c', 'f', 'b':
	default:
		return fmt.Errorf("invalid log output type: %c", c.LogOutput)
	}
	if (c.LogOutput == 'f' || c.LogOutput == 'b') && c.LogFile == "" {
		return fmt.Errorf("a log file is required for log output %c", c.LogOutput)
	}
	if c.Accuracy < 0 {
		return fmt.Errorf("accuracy cannot be negative: %f", c.Accuracy)
	}
	if c.MaxSampleDistance <= 0 {
		return fmt.Errorf("max sample distance must be positive: %f", c.MaxSampleDistance)
	}
	if c.MaxSamplePoints < 2 || c.MaxSamplePoints > geometry.SampleLimit {
		return fmt.Errorf("max sample points must be between 2 and %d: %d", geometry.SampleLimit, c.MaxSamplePoints)
	}
	if c.DefaultMiddleRatio < 0 || c.DefaultMiddleRatio > 1 {
		return fmt.Errorf("default middle ratio must be between 0 and 1: %f", c.DefaultMiddleRatio)
	}
	return nil
}

// ApplyLogging configures the package logger from this config
func (c *Config) ApplyLogging() error {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	logger.SetShowDateTime(c.ShowDateTime)
	return logger.SetLogOutputFile(c.LogOutput, c.LogFile)
}

package config

import (
	"fmt"

	"github.com/sdejongh/comparefiles/pkg/models"
)

// MaxBlockSize bounds the full-pass read buffer
const MaxBlockSize = 64 << 20

// Config represents the application configuration
type Config struct {
	Compare CompareConfig `yaml:"compare"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// CompareConfig holds comparison settings
type CompareConfig struct {
	PrefixSize int64 `yaml:"prefix_size"` // Bytes hashed by the prefix check
	BlockSize  int   `yaml:"block_size"`  // Read size of the full pass
	SinglePass bool  `yaml:"single_pass"` // Skip the prefix check
	Parallel   bool  `yaml:"parallel"`    // Hash both files concurrently
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show progress bars during the full pass
	Timing   bool   `yaml:"timing"`   // Print total compare time
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Format     string `yaml:"format"`      // "json" or "text"
	Level      string `yaml:"level"`       // "debug", "info", "warn", "error"
	File       string `yaml:"file"`        // Log file path (empty = stderr)
	MaxSize    int64  `yaml:"max_size"`    // Rotate after this many bytes (0 = never)
	MaxBackups int    `yaml:"max_backups"` // Rotated files to keep
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Compare: CompareConfig{
			PrefixSize: 1024,
			BlockSize:  8192,
		},
		Output: OutputConfig{
			Format: "human",
		},
		Logging: LoggingConfig{
			Enabled:    false,
			Format:     "text",
			Level:      "info",
			MaxSize:    10 * 1024 * 1024,
			MaxBackups: 3,
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Compare.PrefixSize < 1 {
		return &models.ValidationError{
			Field:   "compare.prefix_size",
			Message: "must be at least 1",
		}
	}

	if c.Compare.BlockSize < 1 {
		return &models.ValidationError{
			Field:   "compare.block_size",
			Message: "must be at least 1",
		}
	}

	if c.Compare.BlockSize > MaxBlockSize {
		return &models.ValidationError{
			Field:   "compare.block_size",
			Message: fmt.Sprintf("must be at most %d", MaxBlockSize),
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.ValidationError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	if c.Logging.MaxSize < 0 || c.Logging.MaxBackups < 0 {
		return &models.ValidationError{
			Field:   "logging.max_size",
			Message: "rotation limits cannot be negative",
		}
	}

	return nil
}

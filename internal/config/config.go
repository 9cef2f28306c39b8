// Package config provides the tunable data passed into the scorer and search.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/PeytonMAnderson/ChessAI-sub000/internal/engine"
	"github.com/PeytonMAnderson/ChessAI-sub000/internal/errors"
)

// Config holds all configuration for one scorer/search setup.
type Config struct {
	Eval   *EvalConfig
	Search *SearchConfig

	// Position the demo starts from. Empty means the standard initial position.
	StartFEN string

	Verbosity int // 0=nothing, 1=summary, 2=per root move detail

	// Diagnostics stream
	LogFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Eval:      NewEvalConfig(),
		Search:    NewSearchConfig(),
		StartFEN:  engine.InitialFEN,
		Verbosity: 1,
		LogFile:   os.Stderr,
	}
}

// Validate checks every sub-configuration and the start position.
func (c *Config) Validate() error {
	if c.Eval == nil || c.Search == nil {
		return fmt.Errorf("missing eval or search section: %w", errors.ErrInvalidConfig)
	}
	if err := c.Eval.Validate(); err != nil {
		return err
	}
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d < 0: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.StartFEN != "" {
		if _, err := engine.Load(c.StartFEN); err != nil {
			return fmt.Errorf("start position: %w: %w", errors.ErrInvalidConfig, err)
		}
	}
	return nil
}

// Logf writes to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}

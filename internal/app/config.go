package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPaths []string // hcl files or directories

	LogFormat string
	LogLevel  string

	// SortedOrder runs plugin constructors in name order.
	SortedOrder bool
	// Strict rejects duplicate plugin names and fails the run when a
	// required plugin did not register itself.
	Strict bool
	// Entities is the number of entities to create after startup.
	Entities int
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.Entities < 0 {
		return nil, errors.New("Entities cannot be negative")
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("unsupported log format %q", cfg.LogFormat)
	}
	return &cfg, nil
}

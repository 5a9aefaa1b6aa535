package utils

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ErrNegativeWorkers is returned when Config.Workers is below zero
var ErrNegativeWorkers = errors.New("workers must not be negative")

// Config holds the options for stepping a grid
type Config struct {
	UseParallel bool `json:"use_parallel"`
	Workers     int  `json:"workers"` // 0 means runtime.NumCPU()
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		UseParallel: false,
		Workers:     0,
	}
}

// ParseConfig decodes a JSON document on top of DefaultConfig
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()

	if err := json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[ParseConfig] failed to unmarshal data: %q", data)
	}

	if err := config.Validate(); err != nil {
		return config, errors.Wrap(err, "[ParseConfig] invalid config")
	}

	return config, nil
}

// Validate reports whether the config can be used to step a grid
func (c Config) Validate() error {
	if c.Workers < 0 {
		return errors.Wrapf(ErrNegativeWorkers, "[Validate] workers: %d", c.Workers)
	}
	return nil
}

// Package config loads the array engine settings from an optional TOML file.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jhamby/sharray/lang/array"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the settings used to create arrays.
type Config struct {
	// Strategy is the storage strategy of new arrays, "linked" or "dense".
	Strategy string `toml:"strategy"`
	Dense    Dense  `toml:"dense"`
}

// Dense holds the settings of the dense strategy. Zero values select the
// defaults.
type Dense struct {
	InitialCapacity int64 `toml:"initial_capacity"`
	GrowthCeiling   int64 `toml:"growth_ceiling"`
	MaxIndex        int64 `toml:"max_index"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{Strategy: array.Linked.String()}
}

// Load reads the configuration from the TOML file at path. Settings absent
// from the file keep their default value.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Decode(bytes.NewReader(b))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads the configuration in TOML format from r. Unknown settings
// are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c Config) Validate() error {
	if _, ok := array.ParseKind(c.Strategy); !ok {
		return fmt.Errorf("invalid strategy: %q", c.Strategy)
	}
	if c.Dense.InitialCapacity < 0 {
		return fmt.Errorf("invalid dense.initial_capacity: %d", c.Dense.InitialCapacity)
	}
	if c.Dense.GrowthCeiling < 0 {
		return fmt.Errorf("invalid dense.growth_ceiling: %d", c.Dense.GrowthCeiling)
	}
	if c.Dense.MaxIndex < 0 {
		return fmt.Errorf("invalid dense.max_index: %d", c.Dense.MaxIndex)
	}
	return nil
}

// Kind returns the strategy of new arrays. The configuration must be valid.
func (c Config) Kind() array.Kind {
	k, _ := array.ParseKind(c.Strategy)
	return k
}

// NewArray returns a new empty array with the configured strategy.
func (c Config) NewArray() *array.Array {
	if c.Kind() == array.Dense {
		return array.NewWith(array.NewDense(array.DenseConfig{
			InitialCapacity: c.Dense.InitialCapacity,
			GrowthCeiling:   c.Dense.GrowthCeiling,
			MaxIndex:        c.Dense.MaxIndex,
		}))
	}
	return array.New(array.Linked)
}

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load, e.g. OSCCONFIG_CLOCK_OFFSET.
const EnvPrefix = "OSCCONFIG_"

// Load resolves the configuration from, in increasing precedence: the defaults, the YAML or
// JSON file at path (skipped when path is empty) and OSCCONFIG_* environment variables.
// Only fields outside the send channels can be set from the environment.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := cfg.Decode(data); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}

// Decode overlays a YAML or JSON document onto c. Keys missing from the document keep their
// current value, except inside lists: a list replaces every element of its array and must
// have exactly the array's length. Unknown keys are an error.
func (c *Config) Decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// Save writes c to w as YAML.
func (c *Config) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}

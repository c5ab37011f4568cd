package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/fenwick-labs/agentup/internal/messages"
)

// ErrConfigValidation wraps validation failures (as opposed to TOML syntax
// or filesystem errors) so callers can distinguish them with errors.Is.
var ErrConfigValidation = errors.New(messages.ConfigValidationFailedScope)

// Load reads the config file at path, layered over the compiled-in defaults.
// A missing file returns the defaults unchanged.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	return Parse(data, path)
}

// Parse decodes config TOML over the defaults and validates the result.
// data is the TOML content; source is used in error messages.
func Parse(data []byte, source string) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return Config{}, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt+" "+messages.ConfigValidationGuidance, ErrConfigValidation, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return Config{}, fmt.Errorf("%w: %w "+messages.ConfigValidationGuidance, ErrConfigValidation, err)
	}
	return cfg, nil
}

// decodeStrict re-decodes the TOML data rejecting unknown fields, catching
// keys that toml.Unmarshal silently ignores (typos especially).
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// LoadLenient reads the config without validation, layering over defaults.
// Returns an error only on filesystem or TOML syntax errors; doctor uses it
// to keep reporting on a partially valid config.
func LoadLenient(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf(messages.ConfigInvalidConfigFmt, path, err)
	}
	return cfg, nil
}

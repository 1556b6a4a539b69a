package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/castlerow/relkit/internal/messages"
)

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to TOML syntax or filesystem errors). Callers can use
// errors.Is(err, ErrConfigValidation) to distinguish validation problems
// from other Load failure modes.
var ErrConfigValidation = errors.New("config validation failed")

// Load reads the effective config for a project root: the user-level overlay
// (if any) with the project relkit.toml decoded on top of it. A missing
// project file is not an error; defaults apply.
func Load(root string) (*Config, error) {
	cfg := &Config{}

	userPath, err := UserConfigPath()
	if err != nil {
		return nil, err
	}
	if userPath != "" {
		if err := decodeFileInto(cfg, userPath); err != nil {
			return nil, err
		}
	}

	projectPath := filepath.Join(root, FileName)
	if err := decodeFileInto(cfg, projectPath); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeFileInto strictly decodes path into cfg, validating the result.
// A missing file leaves cfg untouched.
func decodeFileInto(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf(messages.ConfigReadFileFmt, path, err)
	}
	return parseInto(cfg, data, path)
}

// Parse decodes and validates config TOML data from a source identifier.
// data is the TOML content; source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	cfg := &Config{}
	if err := parseInto(cfg, data, source); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseInto(cfg *Config, data []byte, source string) error {
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt+" "+messages.ConfigValidationGuidance, ErrConfigValidation, source, strict)
		}
		return fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return fmt.Errorf("%w: %w "+messages.ConfigValidationGuidance, ErrConfigValidation, err)
	}
	return nil
}

// LoadLenient reads the project relkit.toml without validation or the user
// overlay. Returns an error only on filesystem or TOML syntax errors, making
// it suitable for doctor, which needs to diagnose partially valid configs.
func LoadLenient(root string) (*Config, error) {
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf(messages.ConfigReadFileFmt, path, err)
	}
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, path, err)
	}
	return cfg, nil
}

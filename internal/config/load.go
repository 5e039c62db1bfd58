package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/pyprep/internal/messages"
)

// ErrConfigValidation is a sentinel that wraps config validation failures
// (as opposed to TOML syntax or filesystem errors).
var ErrConfigValidation = errors.New("config validation failed")

var readFile = os.ReadFile

// Load reads the config at path, falling back to defaults when the file does not exist.
// lookupEnv supplies environment overrides; pass os.LookupEnv in production.
func Load(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	data, err := readFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	default:
		parsed, err := ParseConfig(data, path)
		if err != nil {
			return nil, err
		}
		cfg = *parsed
	}
	applyEnv(&cfg, lookupEnv)
	if err := cfg.Validate(path); err != nil {
		return nil, fmt.Errorf("%w: %w %s", ErrConfigValidation, err, messages.ConfigValidationGuidance)
	}
	return &cfg, nil
}

// ParseConfig parses config TOML data on top of the defaults.
// Keys omitted from data keep their default values; unknown keys are rejected.
func ParseConfig(data []byte, source string) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt, ErrConfigValidation, source, err)
	}
	return &cfg, nil
}

// decodeStrict re-decodes the TOML data with strict unknown-field rejection.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

func applyEnv(cfg *Config, lookupEnv func(string) (string, bool)) {
	if lookupEnv == nil {
		return
	}
	if value, ok := lookupEnv(CommandEnvVar); ok && strings.TrimSpace(value) != "" {
		cfg.Installer.Command = strings.TrimSpace(value)
	}
}

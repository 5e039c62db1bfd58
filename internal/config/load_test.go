package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := DefaultPath(t.TempDir())
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName), noEnv)
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)
	require.Equal(t, "pip", cfg.Installer.Command)
	require.Equal(t, "requirements.txt", cfg.Installer.Requirements)
}

func TestLoadOverridesFromFile(t *testing.T) {
	path := writeConfig(t, `
[installer]
command = "pip3"
requirements = "deps/requirements-prod.txt"
`)
	cfg, err := Load(path, noEnv)
	require.NoError(t, err)
	require.Equal(t, "pip3", cfg.Installer.Command)
	require.Equal(t, "deps/requirements-prod.txt", cfg.Installer.Requirements)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "[installer]\ncommand = \"pip3\"\n")
	cfg, err := Load(path, noEnv)
	require.NoError(t, err)
	require.Equal(t, "pip3", cfg.Installer.Command)
	require.Equal(t, DefaultRequirements, cfg.Installer.Requirements)
}

func TestLoadEnvOverridesCommand(t *testing.T) {
	path := writeConfig(t, "[installer]\ncommand = \"pip3\"\n")
	cfg, err := Load(path, envMap(map[string]string{CommandEnvVar: " /opt/py/bin/pip "}))
	require.NoError(t, err)
	require.Equal(t, "/opt/py/bin/pip", cfg.Installer.Command)
}

func TestLoadBlankEnvIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName), envMap(map[string]string{CommandEnvVar: "  "}))
	require.NoError(t, err)
	require.Equal(t, DefaultCommand, cfg.Installer.Command)
}

func TestLoadNilLookupEnv(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName), nil)
	require.NoError(t, err)
	require.Equal(t, DefaultCommand, cfg.Installer.Command)
}

func TestLoadUnknownKeyRejected(t *testing.T) {
	path := writeConfig(t, "[installer]\ncommand = \"pip\"\nretries = 3\n")
	_, err := Load(path, noEnv)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrConfigValidation)
	require.Contains(t, err.Error(), "unrecognized keys")
}

func TestLoadSyntaxError(t *testing.T) {
	path := writeConfig(t, "[installer\n")
	_, err := Load(path, noEnv)
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrConfigValidation))
	require.Contains(t, err.Error(), "invalid config")
}

func TestLoadBlankFieldRejected(t *testing.T) {
	path := writeConfig(t, "[installer]\nrequirements = \"  \"\n")
	_, err := Load(path, noEnv)
	require.ErrorIs(t, err, ErrConfigValidation)
	require.Contains(t, err.Error(), "installer.requirements is required")
}

func TestLoadReadError(t *testing.T) {
	orig := readFile
	t.Cleanup(func() { readFile = orig })
	readFile = func(string) ([]byte, error) { return nil, errors.New("permission denied") }

	_, err := Load("pyprep.toml", noEnv)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read config")
	require.Contains(t, err.Error(), "permission denied")
}

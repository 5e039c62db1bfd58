// Package config loads the optional pyprep.toml installer settings.
package config

// Defaults reproduce the installer behavior when no config file is present.
const (
	DefaultCommand      = "pip"
	DefaultRequirements = "requirements.txt"
)

// CommandEnvVar overrides Installer.Command when set to a non-blank value.
const CommandEnvVar = "PYPREP_PIP"

// Config is the root of pyprep.toml.
type Config struct {
	Installer InstallerConfig `toml:"installer"`
}

// InstallerConfig selects the package-management executable and the manifest it installs.
type InstallerConfig struct {
	Command      string `toml:"command"`
	Requirements string `toml:"requirements"`
}

// Default returns the configuration used when pyprep.toml is absent.
func Default() Config {
	return Config{
		Installer: InstallerConfig{
			Command:      DefaultCommand,
			Requirements: DefaultRequirements,
		},
	}
}

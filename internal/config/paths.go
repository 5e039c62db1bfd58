package config

import "path/filepath"

// FileName is the config file looked up in the working directory.
const FileName = "pyprep.toml"

// DefaultPath returns the config path for a working directory.
func DefaultPath(dir string) string {
	return filepath.Join(dir, FileName)
}

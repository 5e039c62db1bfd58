package config

import (
	"fmt"
	"strings"

	"github.com/conn-castle/pyprep/internal/messages"
)

// Validate ensures every installer field is usable.
func (c *Config) Validate(path string) error {
	if strings.TrimSpace(c.Installer.Command) == "" {
		return fmt.Errorf(messages.ConfigFieldRequiredFmt, path, "installer.command")
	}
	if strings.TrimSpace(c.Installer.Requirements) == "" {
		return fmt.Errorf(messages.ConfigFieldRequiredFmt, path, "installer.requirements")
	}
	return nil
}

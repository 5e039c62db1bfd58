// Package plan defines the fixed, ordered installer invocations.
package plan

import (
	"strings"

	"github.com/conn-castle/pyprep/internal/config"
	"github.com/conn-castle/pyprep/internal/messages"
)

// Step identifiers, in execution order.
const (
	StepUpgradeInstaller  = "upgrade-installer"
	StepUpgradeBuildTools = "upgrade-build-tools"
	StepInstallSCM        = "install-setuptools-scm"
	StepPinBuildTools     = "pin-build-tools"
	StepRequirements      = "install-requirements"
)

// Version floors re-asserted after the upgrade step.
const (
	SetuptoolsConstraint = "setuptools>=65.0.0"
	WheelConstraint      = "wheel>=0.37.0"
)

// Flags passed verbatim to the requirements install.
const (
	FlagNoBuildIsolation = "--no-build-isolation"
	FlagNoUsePEP517      = "--no-use-pep517"
)

// Step is a single installer invocation.
type Step struct {
	ID    string
	Title string
	// Args follow the executable name on the command line.
	Args []string
}

// Plan is the executable plus its ordered steps.
type Plan struct {
	Command string
	Steps   []Step
}

// Default returns the plan for the default configuration.
func Default() Plan {
	return Build(config.Default())
}

// Build returns the five-step plan for cfg.
// The step list and flags are fixed; only the executable and manifest path vary.
func Build(cfg config.Config) Plan {
	return Plan{
		Command: cfg.Installer.Command,
		Steps: []Step{
			{
				ID:    StepUpgradeInstaller,
				Title: messages.StepUpgradeInstallerTitle,
				Args:  []string{"install", "--upgrade", "pip"},
			},
			{
				ID:    StepUpgradeBuildTools,
				Title: messages.StepUpgradeBuildToolsTitle,
				Args:  []string{"install", "--upgrade", "setuptools", "wheel"},
			},
			{
				ID:    StepInstallSCM,
				Title: messages.StepInstallSCMTitle,
				Args:  []string{"install", "setuptools-scm"},
			},
			{
				ID:    StepPinBuildTools,
				Title: messages.StepPinBuildToolsTitle,
				Args:  []string{"install", SetuptoolsConstraint, WheelConstraint},
			},
			{
				ID:    StepRequirements,
				Title: messages.StepRequirementsTitle,
				Args:  []string{"install", "-r", cfg.Installer.Requirements, FlagNoBuildIsolation, FlagNoUsePEP517},
			},
		},
	}
}

// CommandLine renders the step as a shell-quoted command line for display.
func (s Step) CommandLine(command string) string {
	parts := make([]string, 0, len(s.Args)+1)
	parts = append(parts, shellQuote(command))
	for _, arg := range s.Args {
		parts = append(parts, shellQuote(arg))
	}
	return strings.Join(parts, " ")
}

// shellQuote single-quotes arg when a POSIX shell would otherwise interpret it.
func shellQuote(arg string) string {
	if arg == "" {
		return "''"
	}
	if !strings.ContainsAny(arg, " \t\n'\"\\$`<>|&;()*?[]#~!{}") {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

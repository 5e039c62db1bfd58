package plan

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conn-castle/pyprep/internal/config"
)

func TestDefaultOrder(t *testing.T) {
	p := Default()
	require.Equal(t, "pip", p.Command)

	var ids []string
	for _, step := range p.Steps {
		ids = append(ids, step.ID)
	}
	require.Equal(t, []string{
		StepUpgradeInstaller,
		StepUpgradeBuildTools,
		StepInstallSCM,
		StepPinBuildTools,
		StepRequirements,
	}, ids)
}

func TestDefaultArgs(t *testing.T) {
	p := Default()
	require.Equal(t, [][]string{
		{"install", "--upgrade", "pip"},
		{"install", "--upgrade", "setuptools", "wheel"},
		{"install", "setuptools-scm"},
		{"install", "setuptools>=65.0.0", "wheel>=0.37.0"},
		{"install", "-r", "requirements.txt", "--no-build-isolation", "--no-use-pep517"},
	}, [][]string{p.Steps[0].Args, p.Steps[1].Args, p.Steps[2].Args, p.Steps[3].Args, p.Steps[4].Args})
}

func TestRequirementsStepFlagsVerbatim(t *testing.T) {
	last := Default().Steps[len(Default().Steps)-1]
	require.Contains(t, last.Args, "--no-build-isolation")
	require.Contains(t, last.Args, "--no-use-pep517")
}

func TestBuildUsesConfig(t *testing.T) {
	cfg := config.Config{Installer: config.InstallerConfig{Command: "pip3", Requirements: "deps/prod.txt"}}
	p := Build(cfg)
	require.Equal(t, "pip3", p.Command)
	require.Len(t, p.Steps, 5)
	require.Equal(t, []string{"install", "-r", "deps/prod.txt", FlagNoBuildIsolation, FlagNoUsePEP517}, p.Steps[4].Args)
	// The installer upgrades itself by package name, not by executable name.
	require.Equal(t, []string{"install", "--upgrade", "pip"}, p.Steps[0].Args)
}

func TestBuildReturnsFreshSlices(t *testing.T) {
	a := Default()
	a.Steps[0].Args[2] = "mutated"
	b := Default()
	require.Equal(t, "pip", b.Steps[0].Args[2])
}

func TestCommandLine(t *testing.T) {
	p := Default()
	require.Equal(t, "pip install --upgrade pip", p.Steps[0].CommandLine(p.Command))
	require.Equal(t, "pip install 'setuptools>=65.0.0' 'wheel>=0.37.0'", p.Steps[3].CommandLine(p.Command))
	require.Equal(t, "pip install -r requirements.txt --no-build-isolation --no-use-pep517", p.Steps[4].CommandLine(p.Command))
}

func TestShellQuote(t *testing.T) {
	tests := map[string]string{
		"":             "''",
		"plain":        "plain",
		"with space":   "'with space'",
		"it's":         `'it'\''s'`,
		"/opt/bin/pip": "/opt/bin/pip",
	}
	for in, want := range tests {
		if got := shellQuote(in); got != want {
			t.Fatalf("shellQuote(%q) = %q, want %q", in, got, want)
		}
	}
}

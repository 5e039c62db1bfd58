package messages

// Installer sequence messages.
const (
	StepUpgradeInstallerTitle  = "Upgrading the package installer"
	StepUpgradeBuildToolsTitle = "Upgrading setuptools and wheel"
	StepInstallSCMTitle        = "Installing setuptools-scm"
	StepPinBuildToolsTitle     = "Constraining setuptools and wheel versions"
	StepRequirementsTitle      = "Installing project requirements"

	// StepBannerFmt is printed before each step: index, total, title.
	StepBannerFmt   = "==> [%d/%d] %s\n"
	StepCommandFmt  = "    $ %s\n"
	SequenceDoneFmt = "All %d steps completed.\n"

	DryRunHeader  = "Dry run: the following commands would be executed in order:\n"
	DryRunLineFmt = "%d. %s\n"

	StepFailedFmt      = "step %d/%d (%s) failed: %v"
	InstallerEmptyPlan = "installer plan has no steps"
)

package messages

// CLI messages for the root command.
const (
	// RootUse is the CLI command name.
	RootUse = "pyprep"
	// RootShort is the short description for the root command.
	RootShort = "Prepare the Python environment for this project"
	RootLong  = `Upgrade pip and the build toolchain, then install requirements.txt.

Steps run in a fixed order and the first failing step aborts the rest.
The exit status is the exit status of the failing step.`
	RootVersionFlag = "Print version and exit"
	RootDryRunFlag  = "Print the installer invocations without running them"
	RootQuietFlag   = "Suppress progress banners (installer output is never suppressed)"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"
)

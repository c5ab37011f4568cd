package messages

// Messages for platform detection, dependency installs, workspace setup, and launch.
const (
	// PkgmgrUnsupportedPlatformFmt reports an OS agentup cannot bootstrap.
	PkgmgrUnsupportedPlatformFmt = "unsupported platform %q: agentup supports Linux (apt, yum, or dnf) and macOS (Homebrew)"
	// PkgmgrBrewMissing reports macOS without Homebrew.
	PkgmgrBrewMissing = "Homebrew is required on macOS but was not found; install it from https://brew.sh and re-run"
	// PkgmgrNoManagerFound reports a Linux host with no known package manager.
	PkgmgrNoManagerFound = "no supported package manager found (looked for apt-get, yum, dnf)"
	// PkgmgrUpdateFailedFmt reports a package index refresh failure.
	PkgmgrUpdateFailedFmt = "refresh %s package index: %w"
	// PkgmgrInstallFailedFmt reports a package install failure.
	PkgmgrInstallFailedFmt = "install %s via %s: %w"

	// SysdepsNodeVersionFmt reports a failure to query the node version.
	SysdepsNodeVersionFmt = "query node version: %w"
	// SysdepsNodeParseVersionFmt reports unparseable node version output.
	SysdepsNodeParseVersionFmt = "parse node version %q: %w"
	// SysdepsNodeTooOldFmt reports a node below the minimum major version after install.
	SysdepsNodeTooOldFmt = "node %s is below the required major version %d and installing a newer one did not help; install Node.js >= %d manually and re-run"
	// SysdepsNodeStillMissing reports node absent after an install attempt.
	SysdepsNodeStillMissing = "node is still missing after install"
	// SysdepsGitStillMissing reports git absent after an install attempt.
	SysdepsGitStillMissing = "git is still missing after install"
	// SysdepsCLIInstallFmt reports a failed npm global install of the agent CLI.
	SysdepsCLIInstallFmt = "npm install -g %s: %w"
	// SysdepsCLIStillMissingFmt reports the agent CLI absent after install.
	SysdepsCLIStillMissingFmt = "%s is still missing after npm install; check that npm's global bin directory is on PATH"

	// WorkspaceCreateFailedFmt reports a workspace directory creation failure.
	WorkspaceCreateFailedFmt = "create workspace directory %s: %w"

	// GitCloneFailedFmt reports a failed clone of the starter repository.
	GitCloneFailedFmt = "clone %s: %w"

	// LaunchExitErrorFmt reports the agent CLI exiting with an error.
	LaunchExitErrorFmt = "%s exited with error: %w"
	// LaunchReadEnvFileFmt reports an unreadable launch env file.
	LaunchReadEnvFileFmt = "read %s: %w"

	// EnvfileLineErrorFmt formats a parse error with its line number.
	EnvfileLineErrorFmt = "line %d: %w"
	// EnvfileReadFailedFmt reports a scanner failure while reading env content.
	EnvfileReadFailedFmt = "read env content: %w"
	// EnvfileExpectedKeyValue reports a line without a KEY=value form.
	EnvfileExpectedKeyValue = "expected KEY=value"
	// EnvfileUnterminatedQuotedValue reports a quoted value with no closing quote.
	EnvfileUnterminatedQuotedValue = "unterminated quoted value"
	// EnvfileInvalidQuotedSuffix reports trailing garbage after a quoted value.
	EnvfileInvalidQuotedSuffix = "unexpected content after quoted value"
)

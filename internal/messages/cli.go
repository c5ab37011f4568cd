package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "agentup"
	// RootShort is the short description for the root command.
	RootShort = "Bootstrap a machine for agent-assisted coding"
	RootLong  = "agentup prepares the current machine for agent-assisted coding: it detects the\n" +
		"system package manager, installs Node.js, git, and the Gemini CLI when missing,\n" +
		"creates a fresh workspace, clones the starter repository, and launches the agent\n" +
		"CLI interactively."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// UpUse is the up command name.
	UpUse   = "up"
	UpShort = "Run the full bootstrap (default command)"

	UpFlagYes      = "Skip the confirmation prompt before installing system packages"
	UpFlagNoLaunch = "Stop after cloning; do not launch the agent CLI"

	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the host without changing anything"

	// ConfigUse is the config command usage.
	ConfigUse      = "config"
	ConfigShort    = "Inspect or edit the agentup configuration file"
	ConfigSetUse   = "set <key> <value>"
	ConfigSetShort = "Set a configuration value, preserving comments and formatting"

	// McpPromptsUse is the mcp-prompts command name.
	McpPromptsUse   = "mcp-prompts"
	McpPromptsShort = "Run the task-log prompt server over stdio"

	// ConfirmInstallFmt asks before installing system packages via the detected manager.
	ConfirmInstallFmt  = "Install missing dependencies with %s?"
	ConfirmAborted     = "aborted: nothing was installed"
	ConfirmRequiresTTY = "confirmation requires an interactive terminal; re-run with --yes"
)

package messages

// Step and status lines printed by the bootstrap pipeline.
const (
	BootstrapDetectedFmt     = "Detected %s (%s)"
	BootstrapUpdatingIndex   = "Refreshing the package index..."
	BootstrapNodePresentFmt  = "node %s satisfies the minimum major version %d"
	BootstrapNodeInstalling  = "Node.js not found or too old; installing..."
	BootstrapGitPresentFmt   = "git already installed: %s"
	BootstrapGitInstalling   = "git not found; installing..."
	BootstrapCLIPresentFmt   = "%s already installed"
	BootstrapCLIInstalling   = "%s not found; installing via npm..."
	BootstrapWorkspaceFmt    = "Created workspace %s"
	BootstrapCloningFmt      = "Cloning %s..."
	BootstrapTaskLogWritten  = "Wrote the task-log template"
	BootstrapTaskLogKeptFmt  = "Existing task-log differs from the template; keeping yours:\n%s"
	BootstrapLaunchingFmt    = "Launching %s..."
	BootstrapDoneNoLaunch    = "Bootstrap complete (launch skipped)"
	BootstrapStatusInfo      = "[ info ]"
	BootstrapStatusOK        = "[  ok  ]"
	BootstrapStatusWarn      = "[ warn ]"
	BootstrapStatusError     = "[ fail ]"
	BootstrapLockBusy        = "another agentup bootstrap is already running on this machine"
	BootstrapOpenLockFmt     = "open lock file %s: %w"
	BootstrapLockFmt         = "lock %s: %w"
	BootstrapLockTimeoutFmt  = "timed out waiting %s for another bootstrap to finish"
	BootstrapScaffoldWarnFmt = "Warning: could not write the task-log template: %v"
)

// Package bootstrap runs the end-to-end environment setup: detect the
// platform, install missing dependencies, create a workspace, clone the
// starter repository, and launch the agent CLI.
package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/fenwick-labs/agentup/internal/config"
	"github.com/fenwick-labs/agentup/internal/gitrepo"
	"github.com/fenwick-labs/agentup/internal/launch"
	"github.com/fenwick-labs/agentup/internal/messages"
	"github.com/fenwick-labs/agentup/internal/pkgmgr"
	"github.com/fenwick-labs/agentup/internal/sysdeps"
	"github.com/fenwick-labs/agentup/internal/tasklog"
	"github.com/fenwick-labs/agentup/internal/terminal"
	"github.com/fenwick-labs/agentup/internal/ui"
	"github.com/fenwick-labs/agentup/internal/workspace"
)

var (
	infoColor = color.New(color.FgCyan)
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	failColor = color.New(color.FgRed)
)

// Confirmer matches ui.Confirmer; declared here so tests can fake it without
// a terminal.
type Confirmer interface {
	Confirm(title string) error
}

// Options carries everything Run needs. Zero-value fields fall back to the
// real system implementations.
type Options struct {
	Config config.Config
	Paths  config.Paths

	// Yes skips the pre-install confirmation prompt.
	Yes bool
	// NoLaunch stops after the clone and task-log scaffold.
	NoLaunch bool

	Stdout io.Writer
	Stderr io.Writer

	PkgSystem    pkgmgr.System
	DepSystem    sysdeps.System
	GitSystem    gitrepo.System
	LaunchSystem launch.System
	Confirm      Confirmer

	// Interactive reports whether a terminal is attached; only interactive
	// runs get the pre-install prompt.
	Interactive func() bool
	// Getwd returns the directory the workspace is created under.
	Getwd func() (string, error)
	// Environ supplies the base environment for the launched CLI.
	Environ func() []string
}

func (o Options) withDefaults() Options {
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.PkgSystem == nil {
		o.PkgSystem = pkgmgr.RealSystem{}
	}
	if o.DepSystem == nil {
		o.DepSystem = sysdeps.RealSystem{}
	}
	if o.GitSystem == nil {
		o.GitSystem = gitrepo.RealSystem{}
	}
	if o.LaunchSystem == nil {
		o.LaunchSystem = launch.RealSystem{}
	}
	if o.Confirm == nil {
		o.Confirm = ui.NewHuhUI()
	}
	if o.Interactive == nil {
		o.Interactive = terminal.IsInteractive
	}
	if o.Getwd == nil {
		o.Getwd = os.Getwd
	}
	if o.Environ == nil {
		o.Environ = os.Environ
	}
	return o
}

// Run executes the bootstrap pipeline. Every step either succeeds and
// continues or fails and aborts; the first error is returned unchanged so
// main can print it with a fail label.
func Run(opts Options) error {
	opts = opts.withDefaults()

	mgr, err := pkgmgr.Detect(opts.PkgSystem)
	if err != nil {
		return err
	}
	info(opts.Stdout, messages.BootstrapDetectedFmt, opts.PkgSystem.GOOS(), mgr)

	if err := os.MkdirAll(opts.Paths.Dir, 0o755); err != nil {
		return err
	}
	return withRunLock(opts.Paths.LockPath, func() error {
		return runLocked(opts, mgr)
	})
}

func runLocked(opts Options, mgr pkgmgr.Manager) error {
	cfg := opts.Config

	if installsPending(opts, mgr) && !opts.Yes && opts.Interactive() {
		if err := opts.Confirm.Confirm(fmt.Sprintf(messages.ConfirmInstallFmt, mgr)); err != nil {
			return err
		}
	}

	info(opts.Stdout, messages.BootstrapUpdatingIndex)
	name, args := mgr.UpdateCommand(opts.PkgSystem)
	if err := opts.DepSystem.Run(name, args...); err != nil {
		return fmt.Errorf(messages.PkgmgrUpdateFailedFmt, mgr, err)
	}

	if err := ensureDeps(opts, mgr); err != nil {
		return err
	}

	parent, err := opts.Getwd()
	if err != nil {
		return err
	}
	ws, err := workspace.Create(parent, cfg.Workspace.Prefix)
	if err != nil {
		return err
	}
	ok(opts.Stdout, messages.BootstrapWorkspaceFmt, ws.Dir)

	info(opts.Stdout, messages.BootstrapCloningFmt, cfg.Repo.URL)
	cloneDir := filepath.Join(ws.Dir, repoDirName(cfg.Repo.URL))
	if err := gitrepo.Clone(opts.GitSystem, cfg.Repo.URL, cloneDir); err != nil {
		return err
	}

	scaffoldTaskLog(opts, cloneDir)

	if opts.NoLaunch {
		ok(opts.Stdout, messages.BootstrapDoneNoLaunch)
		return nil
	}

	env, err := launch.BuildEnv(opts.Environ(), opts.Paths.EnvPath)
	if err != nil {
		return err
	}
	info(opts.Stdout, messages.BootstrapLaunchingFmt, cfg.CLI.Command)
	return launch.Interactive(opts.LaunchSystem, cfg.CLI.Command, cloneDir, env)
}

// ensureDeps installs node, git, and the agent CLI in that order, reporting
// each outcome as it goes.
func ensureDeps(opts Options, mgr pkgmgr.Manager) error {
	cfg := opts.Config

	if _, satisfied := sysdeps.NodeSatisfies(opts.DepSystem, cfg.Runtime.MinNodeMajor); !satisfied {
		info(opts.Stdout, messages.BootstrapNodeInstalling)
	}
	nodeStatus, err := sysdeps.EnsureNode(opts.DepSystem, opts.PkgSystem, mgr, cfg.Runtime.MinNodeMajor)
	if err != nil {
		return err
	}
	ok(opts.Stdout, messages.BootstrapNodePresentFmt, strings.TrimPrefix(nodeStatus.Version, "v"), cfg.Runtime.MinNodeMajor)

	if _, lookErr := opts.DepSystem.LookPath("git"); lookErr != nil {
		info(opts.Stdout, messages.BootstrapGitInstalling)
	}
	gitStatus, err := sysdeps.EnsureGit(opts.DepSystem, opts.PkgSystem, mgr)
	if err != nil {
		return err
	}
	if !gitStatus.Installed {
		ok(opts.Stdout, messages.BootstrapGitPresentFmt, gitStatus.Version)
	}

	if _, lookErr := opts.DepSystem.LookPath(cfg.CLI.Command); lookErr != nil {
		info(opts.Stdout, messages.BootstrapCLIInstalling, cfg.CLI.Package)
	}
	cliStatus, err := sysdeps.EnsureCLI(opts.DepSystem, cfg.CLI.Package, cfg.CLI.Command)
	if err != nil {
		return err
	}
	if !cliStatus.Installed {
		ok(opts.Stdout, messages.BootstrapCLIPresentFmt, cfg.CLI.Command)
	}
	return nil
}

// installsPending reports whether any of node, git, or the CLI would be
// installed, so the confirmation prompt only appears when something will
// actually change on the host.
func installsPending(opts Options, mgr pkgmgr.Manager) bool {
	if _, ok := sysdeps.NodeSatisfies(opts.DepSystem, opts.Config.Runtime.MinNodeMajor); !ok {
		return true
	}
	if _, err := opts.DepSystem.LookPath("git"); err != nil {
		return true
	}
	if _, err := opts.DepSystem.LookPath(opts.Config.CLI.Command); err != nil {
		return true
	}
	return false
}

// scaffoldTaskLog writes the task-log template into the clone. Failures are
// warnings, never fatal; the clone and launch matter more than the template.
func scaffoldTaskLog(opts Options, dir string) {
	result, err := tasklog.Scaffold(dir)
	if err != nil {
		warn(opts.Stderr, messages.BootstrapScaffoldWarnFmt, err)
		return
	}
	switch {
	case result.Written:
		ok(opts.Stdout, messages.BootstrapTaskLogWritten)
	case result.Diff != "":
		warn(opts.Stdout, messages.BootstrapTaskLogKeptFmt, result.Diff)
	}
}

// repoDirName derives the clone directory name from the repository URL the
// same way git does.
func repoDirName(url string) string {
	trimmed := strings.TrimSuffix(strings.TrimRight(url, "/"), ".git")
	if idx := strings.LastIndexAny(trimmed, "/:"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	if trimmed == "" {
		return "repo"
	}
	return trimmed
}

func info(w io.Writer, format string, args ...any) {
	statusLine(w, infoColor, messages.BootstrapStatusInfo, format, args...)
}

func ok(w io.Writer, format string, args ...any) {
	statusLine(w, okColor, messages.BootstrapStatusOK, format, args...)
}

func warn(w io.Writer, format string, args ...any) {
	statusLine(w, warnColor, messages.BootstrapStatusWarn, format, args...)
}

// Fail prints a labeled error line. Exposed for main, which renders the
// returned pipeline error with the same look as the step output.
func Fail(w io.Writer, format string, args ...any) {
	statusLine(w, failColor, messages.BootstrapStatusError, format, args...)
}

func statusLine(w io.Writer, c *color.Color, label string, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", c.Sprint(label), fmt.Sprintf(format, args...))
}

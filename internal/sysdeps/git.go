package sysdeps

import (
	"fmt"

	"github.com/fenwick-labs/agentup/internal/messages"
	"github.com/fenwick-labs/agentup/internal/pkgmgr"
)

// EnsureGit verifies git is present, installing it when absent. When git is
// already installed, Status.Version carries the `git --version` output
// verbatim and no install is attempted.
func EnsureGit(sys System, psys pkgmgr.System, mgr pkgmgr.Manager) (Status, error) {
	if _, err := sys.LookPath("git"); err == nil {
		version, _ := sys.Output("git", "--version")
		return Status{Version: version}, nil
	}

	name, args := mgr.InstallCommand(psys, mgr.GitPackages()...)
	if err := sys.Run(name, args...); err != nil {
		return Status{}, fmt.Errorf(messages.PkgmgrInstallFailedFmt, "git", mgr, err)
	}

	if _, err := sys.LookPath("git"); err != nil {
		return Status{}, fmt.Errorf(messages.SysdepsGitStillMissing)
	}
	version, _ := sys.Output("git", "--version")
	return Status{Version: version, Installed: true}, nil
}

package sysdeps

import (
	"fmt"

	"github.com/fenwick-labs/agentup/internal/messages"
)

// EnsureCLI verifies the agent CLI command is present, installing the npm
// package globally when it is not. pkg is the npm package spec; command is
// the binary the package provides.
func EnsureCLI(sys System, pkg string, command string) (Status, error) {
	if _, err := sys.LookPath(command); err == nil {
		return Status{}, nil
	}

	if err := sys.Run("npm", "install", "-g", pkg); err != nil {
		return Status{}, fmt.Errorf(messages.SysdepsCLIInstallFmt, pkg, err)
	}

	if _, err := sys.LookPath(command); err != nil {
		return Status{}, fmt.Errorf(messages.SysdepsCLIStillMissingFmt, command)
	}
	return Status{Installed: true}, nil
}

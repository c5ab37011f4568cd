// Package launch hands the terminal over to the installed agent CLI.
package launch

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/fenwick-labs/agentup/internal/messages"
)

// System abstracts the final interactive invocation.
type System interface {
	// RunInteractive runs command with no arguments in dir, with env and
	// inherited stdio, blocking until the user exits it.
	RunInteractive(command string, dir string, env []string) error
}

// RealSystem implements System using os/exec.
type RealSystem struct{}

// RunInteractive runs the command in dir with inherited stdio.
func (RealSystem) RunInteractive(command string, dir string, env []string) error {
	cmd := exec.Command(command)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = env
	return cmd.Run()
}

// Interactive launches the agent CLI inside the workspace clone. This is the
// terminal step of the bootstrap: control passes to the user, and the CLI's
// exit status becomes ours.
func Interactive(sys System, command string, dir string, env []string) error {
	if err := sys.RunInteractive(command, dir, env); err != nil {
		return fmt.Errorf(messages.LaunchExitErrorFmt, command, err)
	}
	return nil
}

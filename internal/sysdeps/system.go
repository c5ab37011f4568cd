// Package sysdeps ensures the bootstrap's external dependencies are present:
// a minimum-version Node.js runtime, git, and the agent CLI npm package.
package sysdeps

import (
	"os"
	"os/exec"
	"strings"
)

// System abstracts subprocess execution for dependency checks and installs.
type System interface {
	LookPath(name string) (string, error)
	// Output runs a command and returns its trimmed standard output.
	Output(name string, args ...string) (string, error)
	// Run runs a command with inherited stdio so package-manager progress
	// and prompts reach the user directly.
	Run(name string, args ...string) error
}

// RealSystem implements System using os/exec.
type RealSystem struct{}

// LookPath searches for an executable in the directories named by PATH.
func (RealSystem) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Output runs the command and returns its trimmed standard output.
func (RealSystem) Output(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	return strings.TrimSpace(string(out)), err
}

// Run runs the command with inherited stdio.
func (RealSystem) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Package gitrepo wraps the git operations the bootstrap needs.
package gitrepo

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/fenwick-labs/agentup/internal/messages"
)

// System abstracts running git so tests can substitute a stub binary or fake.
type System interface {
	Run(name string, args ...string) error
}

// RealSystem runs git with inherited stdio so clone progress reaches the user.
type RealSystem struct{}

// Run runs the command with inherited stdio.
func (RealSystem) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Clone clones url into dir. Any failure (network, auth, nonexistent remote)
// is returned as-is for the caller to treat as fatal; there is no retry and
// no partial-clone cleanup.
func Clone(sys System, url string, dir string) error {
	if err := sys.Run("git", "clone", url, dir); err != nil {
		return fmt.Errorf(messages.GitCloneFailedFmt, url, err)
	}
	return nil
}

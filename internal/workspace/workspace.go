// Package workspace creates the per-run directory that holds the clone.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/fenwick-labs/agentup/internal/messages"
)

// Test seams.
var (
	nowFunc    = time.Now
	getpidFunc = os.Getpid
	mkdirAll   = os.MkdirAll
)

// Info describes a created workspace.
type Info struct {
	// Dir is the absolute (relative to parent) workspace path.
	Dir string
	// Name is the final path element: prefix-timestamp-pid.
	Name string
}

// Create makes a unique workspace directory under parent. The name combines
// the NFC-normalized prefix, a UTC timestamp, and the process id, so repeated
// invocations within the same second still get distinct directories. The
// directory is created once and never reused or cleaned up.
func Create(parent string, prefix string) (Info, error) {
	name := Name(prefix, nowFunc(), getpidFunc())
	dir := filepath.Join(parent, name)
	if err := mkdirAll(dir, 0o755); err != nil {
		return Info{}, fmt.Errorf(messages.WorkspaceCreateFailedFmt, dir, err)
	}
	return Info{Dir: dir, Name: name}, nil
}

// Name composes the workspace directory name for a given moment and pid.
// The prefix is NFC-normalized so names compare equal across filesystems
// that disagree about Unicode composition.
func Name(prefix string, now time.Time, pid int) string {
	normalized := norm.NFC.String(prefix)
	return fmt.Sprintf("%s-%s-%d", normalized, now.UTC().Format("20060102-150405"), pid)
}

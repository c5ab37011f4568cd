package tasklog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/fenwick-labs/agentup/internal/messages"
)

// DiffMaxLines caps the diff preview shown for a diverged task-log.
const DiffMaxLines = 40

// ScaffoldResult reports what Scaffold did.
type ScaffoldResult struct {
	// Written is true when the template was written (file was absent).
	Written bool
	// Diff holds a truncated unified diff when an existing task-log
	// differs from the template; the existing file is left untouched.
	Diff string
}

// Scaffold places the task-log template into dir. An existing task-log is
// never overwritten: if it matches the template nothing happens, and if it
// differs a capped diff preview is returned so the user can see the drift.
func Scaffold(dir string) (ScaffoldResult, error) {
	template, err := Template()
	if err != nil {
		return ScaffoldResult{}, err
	}

	path := filepath.Join(dir, FileName)
	existing, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if writeErr := os.WriteFile(path, []byte(template), 0o644); writeErr != nil {
			return ScaffoldResult{}, fmt.Errorf(messages.TaskLogWriteErrFmt, path, writeErr)
		}
		return ScaffoldResult{Written: true}, nil
	}
	if err != nil {
		return ScaffoldResult{}, fmt.Errorf(messages.TaskLogStatErrFmt, path, err)
	}

	if string(existing) == template {
		return ScaffoldResult{}, nil
	}

	diff := udiff.Unified("template/"+FileName, FileName, template, string(existing))
	return ScaffoldResult{Diff: truncateDiff(diff, DiffMaxLines)}, nil
}

// truncateDiff caps a unified diff at maxLines, marking the cut.
func truncateDiff(diff string, maxLines int) string {
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	if len(lines) <= maxLines {
		return diff
	}
	truncated := append(lines[:maxLines], fmt.Sprintf(messages.TaskLogDiffTruncatedFmt, maxLines))
	return strings.Join(truncated, "\n") + "\n"
}

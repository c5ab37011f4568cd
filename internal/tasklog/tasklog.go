// Package tasklog owns the task-log convention: the embedded template, its
// scaffolding into fresh workspaces, and the MCP prompt that serves it to
// agent clients.
package tasklog

import (
	"embed"
	"fmt"

	"github.com/fenwick-labs/agentup/internal/messages"
)

//go:embed template/task-log.md
var templateFS embed.FS

// FileName is the task-log's path inside a workspace clone.
const FileName = "TASKLOG.md"

// Template returns the embedded task-log template content.
func Template() (string, error) {
	data, err := templateFS.ReadFile("template/task-log.md")
	if err != nil {
		return "", fmt.Errorf(messages.TaskLogReadTemplateErrFmt, err)
	}
	return string(data), nil
}

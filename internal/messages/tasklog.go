package messages

// Task-log template scaffolding and prompt server messages.
const (
	TaskLogReadTemplateErrFmt = "read embedded task-log template: %w"
	TaskLogWriteErrFmt        = "write task-log %s: %w"
	TaskLogStatErrFmt         = "stat task-log %s: %w"
	TaskLogDiffErrFmt         = "diff task-log %s: %w"
	// TaskLogDiffTruncatedFmt marks a diff preview cut off at the line cap.
	TaskLogDiffTruncatedFmt = "... (diff truncated at %d lines)"

	TaskLogPromptName        = "task-log"
	TaskLogPromptDescription = "The task-log convention for recording task status in human/agent collaboration notes"
	McpRunPromptServerFmt    = "run prompt server: %w"
)

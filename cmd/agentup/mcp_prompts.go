package main

import (
	"github.com/spf13/cobra"

	"github.com/fenwick-labs/agentup/internal/messages"
	"github.com/fenwick-labs/agentup/internal/tasklog"
)

var runPromptServer = tasklog.RunPromptServer

func newMcpPromptsCmd() *cobra.Command {
	return &cobra.Command{
		Use:    messages.McpPromptsUse,
		Short:  messages.McpPromptsShort,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPromptServer(cmd.Context(), Version)
		},
	}
}

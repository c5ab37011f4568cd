package tasklog

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/fenwick-labs/agentup/internal/messages"
)

type promptServerRunner func(ctx context.Context, server *mcp.Server) error

// RunPromptServer serves the task-log convention as an MCP prompt over
// stdio so agent clients can pull it into context on demand.
func RunPromptServer(ctx context.Context, version string) error {
	return runPromptServer(ctx, version, defaultPromptServerRunner)
}

func runPromptServer(ctx context.Context, version string, runner promptServerRunner) error {
	body, err := Template()
	if err != nil {
		return fmt.Errorf(messages.McpRunPromptServerFmt, err)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "agentup",
		Version: version,
	}, nil)

	prompt := &mcp.Prompt{
		Name:        messages.TaskLogPromptName,
		Description: messages.TaskLogPromptDescription,
	}
	server.AddPrompt(prompt, promptHandler(body))

	if err := runner(ctx, server); err != nil {
		return fmt.Errorf(messages.McpRunPromptServerFmt, err)
	}
	return nil
}

func defaultPromptServerRunner(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

func promptHandler(body string) func(context.Context, *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return &mcp.GetPromptResult{
			Description: messages.TaskLogPromptDescription,
			Messages: []*mcp.PromptMessage{
				{
					Role:    "user",
					Content: &mcp.TextContent{Text: body},
				},
			},
		}, nil
	}
}

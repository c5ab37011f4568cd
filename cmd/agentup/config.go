package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fenwick-labs/agentup/internal/config"
	"github.com/fenwick-labs/agentup/internal/messages"
)

var configPaths = config.DefaultPaths

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.ConfigUse,
		Short: messages.ConfigShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := configPaths()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.ConfigShowPathFmt, paths.ConfigPath)
			if _, statErr := os.Stat(paths.ConfigPath); os.IsNotExist(statErr) {
				_, _ = fmt.Fprint(out, messages.ConfigShowNoFileSuffix)
			}
			return nil
		},
	}

	cmd.AddCommand(newConfigSetCmd())
	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ConfigSetUse,
		Short: messages.ConfigSetShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := configPaths()
			if err != nil {
				return err
			}

			content := ""
			data, readErr := os.ReadFile(paths.ConfigPath)
			switch {
			case readErr == nil:
				content = string(data)
			case os.IsNotExist(readErr):
				// New file; the patch appends the section it needs.
			default:
				return fmt.Errorf(messages.ConfigPatchReadFailedFmt, paths.ConfigPath, readErr)
			}

			updated, err := config.Set(content, args[0], args[1])
			if err != nil {
				return err
			}

			if err := os.MkdirAll(paths.Dir, 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(paths.ConfigPath, []byte(updated), 0o644); err != nil {
				return fmt.Errorf(messages.ConfigPatchWriteFailedFmt, paths.ConfigPath, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.ConfigSetUpdatedFmt, args[0], args[1], paths.ConfigPath)
			return nil
		},
	}
}

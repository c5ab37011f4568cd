package main

import (
	"github.com/spf13/cobra"

	"github.com/fenwick-labs/agentup/internal/messages"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare `agentup` runs the full bootstrap, same as `agentup up`.
			return runUp(cmd, upFlags{
				yes:      mustBool(cmd, flagYes),
				noLaunch: mustBool(cmd, flagNoLaunch),
			})
		},
	}

	addUpFlags(cmd)
	cmd.AddCommand(newUpCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newMcpPromptsCmd())
	return cmd
}

func mustBool(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return value
}

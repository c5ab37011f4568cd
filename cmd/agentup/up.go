package main

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/fenwick-labs/agentup/internal/bootstrap"
	"github.com/fenwick-labs/agentup/internal/config"
	"github.com/fenwick-labs/agentup/internal/messages"
	"github.com/fenwick-labs/agentup/internal/update"
)

const (
	flagYes      = "yes"
	flagNoLaunch = "no-launch"
)

var runBootstrap = bootstrap.Run

type upFlags struct {
	yes      bool
	noLaunch bool
}

func newUpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.UpUse,
		Short: messages.UpShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUp(cmd, upFlags{
				yes:      mustBool(cmd, flagYes),
				noLaunch: mustBool(cmd, flagNoLaunch),
			})
		},
	}
	addUpFlags(cmd)
	return cmd
}

func addUpFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP(flagYes, "y", false, messages.UpFlagYes)
	cmd.Flags().Bool(flagNoLaunch, false, messages.UpFlagNoLaunch)
}

// runUp loads configuration, emits the update warning, and hands off to the
// bootstrap pipeline.
func runUp(cmd *cobra.Command, flags upFlags) error {
	paths, err := configPaths()
	if err != nil {
		return err
	}
	cfg, err := config.Load(paths.ConfigPath)
	if err != nil {
		return err
	}

	update.WarnIfOutdated(cmd.Context(), Version, cmd.ErrOrStderr())

	err = runBootstrap(bootstrap.Options{
		Config:   cfg,
		Paths:    paths,
		Yes:      flags.yes,
		NoLaunch: flags.noLaunch,
		Stdout:   cmd.OutOrStdout(),
		Stderr:   cmd.ErrOrStderr(),
	})
	if errors.Is(err, huh.ErrUserAborted) {
		// Ctrl+C at the confirm prompt; the form already cleared itself.
		return &SilentExitError{Code: 130}
	}
	return err
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fenwick-labs/agentup/internal/doctor"
	"github.com/fenwick-labs/agentup/internal/messages"
	"github.com/fenwick-labs/agentup/internal/pkgmgr"
	"github.com/fenwick-labs/agentup/internal/sysdeps"
	"github.com/fenwick-labs/agentup/internal/update"
)

var checkForUpdate = update.Check

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt)

			paths, err := configPaths()
			if err != nil {
				return err
			}

			var results []doctor.Result

			platformResult, _ := doctor.CheckPlatform(pkgmgr.RealSystem{})
			results = append(results, platformResult)

			configResult, cfg := doctor.CheckConfig(paths.ConfigPath)
			results = append(results, configResult)

			depSys := sysdeps.RealSystem{}
			results = append(results,
				doctor.CheckNode(depSys, cfg.Runtime.MinNodeMajor),
				doctor.CheckGit(depSys),
				doctor.CheckCLI(depSys, cfg.CLI.Command),
				updateCheckResult(cmd),
			)

			hasFail := false
			for _, r := range results {
				printResult(out, r)
				if r.Status == doctor.StatusFail {
					hasFail = true
				}
			}
			_, _ = fmt.Fprintln(out)

			if hasFail {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return fmt.Errorf(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

// updateCheckResult turns the latest-release lookup into a doctor row. The
// check is advisory, so every failure mode maps to a warning.
func updateCheckResult(cmd *cobra.Command) doctor.Result {
	result := doctor.Result{CheckName: messages.DoctorCheckNameUpdate}
	if strings.TrimSpace(os.Getenv(update.EnvNoNetwork)) != "" {
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorUpdateSkippedFmt, update.EnvNoNetwork)
		result.Recommendation = fmt.Sprintf(messages.DoctorUpdateSkippedRecommendFmt, update.EnvNoNetwork)
		return result
	}

	check, err := checkForUpdate(cmd.Context(), Version)
	switch {
	case err != nil && update.IsRateLimitError(err):
		result.Status = doctor.StatusWarn
		result.Message = messages.DoctorUpdateRateLimited
	case err != nil:
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorUpdateFailedFmt, err)
		result.Recommendation = messages.DoctorUpdateFailedRecommend
	case check.CurrentIsDev:
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorUpdateDevBuildFmt, check.Latest)
	case check.Outdated:
		result.Status = doctor.StatusWarn
		result.Message = fmt.Sprintf(messages.DoctorUpdateAvailableFmt, check.Latest, check.Current)
		result.Recommendation = messages.DoctorUpdateAvailableRecommend
	default:
		result.Status = doctor.StatusOK
		result.Message = fmt.Sprintf(messages.DoctorUpToDateFmt, check.Current)
	}
	return result
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	lines := strings.Split(recommendation, "\n")
	for i, line := range lines {
		prefix := messages.DoctorRecommendationPrefix
		if i > 0 {
			prefix = messages.DoctorRecommendationIndent
		}
		_, _ = fmt.Fprintf(out, "%s%s\n", prefix, line)
	}
}

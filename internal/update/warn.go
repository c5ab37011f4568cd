package update

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/fenwick-labs/agentup/internal/messages"
)

// EnvNoNetwork disables all network calls (update check) when set.
const EnvNoNetwork = "AGENTUP_NO_NETWORK"

// checkFunc is a seam for tests.
var checkFunc = Check

// WarnIfOutdated emits an update warning to stderr when a newer release is
// available. It is best-effort and never returns an error.
func WarnIfOutdated(ctx context.Context, currentVersion string, stderr io.Writer) {
	if strings.TrimSpace(os.Getenv(EnvNoNetwork)) != "" {
		return
	}
	if stderr == nil {
		stderr = io.Discard
	}

	warnColor := color.New(color.FgYellow)
	result, err := checkFunc(ctx, currentVersion)
	if err != nil {
		_, _ = warnColor.Fprintf(stderr, messages.UpdateWarnCheckFailedFmt, err)
		return
	}
	if result.CurrentIsDev {
		_, _ = warnColor.Fprintf(stderr, messages.UpdateWarnDevBuildFmt, result.Latest)
		return
	}
	if result.Outdated {
		_, _ = warnColor.Fprintf(stderr, messages.UpdateWarnAvailableFmt, result.Latest, result.Current)
	}
}

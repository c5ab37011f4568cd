package doctor

import (
	"fmt"
	"os"

	"github.com/fenwick-labs/agentup/internal/config"
	"github.com/fenwick-labs/agentup/internal/messages"
	"github.com/fenwick-labs/agentup/internal/pkgmgr"
	"github.com/fenwick-labs/agentup/internal/sysdeps"
)

// CheckPlatform verifies the host OS and package manager are supported.
func CheckPlatform(psys pkgmgr.System) (Result, pkgmgr.Manager) {
	mgr, err := pkgmgr.Detect(psys)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNamePlatform,
			Message:        err.Error(),
			Recommendation: messages.DoctorPlatformRecommend,
		}, ""
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNamePlatform,
		Message:   fmt.Sprintf(messages.DoctorPlatformOKFmt, psys.GOOS(), mgr),
	}, mgr
}

// CheckNode reports whether node is present and meets the minimum major.
// A missing or old node is a warning, not a failure: bootstrap installs it.
func CheckNode(sys sysdeps.System, minMajor int) Result {
	if _, err := sys.LookPath("node"); err != nil {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameRuntime,
			Message:        messages.DoctorNodeMissing,
			Recommendation: messages.DoctorNodeMissingRecommend,
		}
	}
	raw, err := sysdeps.NodeVersion(sys)
	if err != nil {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameRuntime,
			Message:        err.Error(),
			Recommendation: messages.DoctorNodeMissingRecommend,
		}
	}
	major, err := sysdeps.ParseNodeMajor(raw)
	if err != nil || major < minMajor {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameRuntime,
			Message:        fmt.Sprintf(messages.DoctorNodeTooOldFmt, raw, minMajor),
			Recommendation: messages.DoctorNodeTooOldRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameRuntime,
		Message:   fmt.Sprintf(messages.DoctorNodeOKFmt, raw, minMajor),
	}
}

// CheckGit reports whether git is present, echoing its version verbatim.
func CheckGit(sys sysdeps.System) Result {
	if _, err := sys.LookPath("git"); err != nil {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameGit,
			Message:        messages.DoctorGitMissing,
			Recommendation: messages.DoctorGitMissingRecommend,
		}
	}
	version, _ := sys.Output("git", "--version")
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameGit,
		Message:   fmt.Sprintf(messages.DoctorGitOKFmt, version),
	}
}

// CheckCLI reports whether the agent CLI binary is on PATH.
func CheckCLI(sys sysdeps.System, command string) Result {
	path, err := sys.LookPath(command)
	if err != nil {
		return Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameCLI,
			Message:        fmt.Sprintf(messages.DoctorCLIMissingFmt, command),
			Recommendation: messages.DoctorCLIMissingRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameCLI,
		Message:   fmt.Sprintf(messages.DoctorCLIOKFmt, command, path),
	}
}

// CheckConfig validates the optional config file and returns a usable config
// either way: on validation failure the lenient load still powers the other
// checks.
func CheckConfig(path string) (Result, config.Config) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameConfig,
			Message:   messages.DoctorConfigDefaults,
		}, config.Default()
	}

	cfg, err := config.Load(path)
	if err == nil {
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameConfig,
			Message:   fmt.Sprintf(messages.DoctorConfigLoadedFmt, path),
		}, cfg
	}

	result := Result{
		Status:         StatusFail,
		CheckName:      messages.DoctorCheckNameConfig,
		Message:        fmt.Sprintf(messages.DoctorConfigInvalidFmt, err),
		Recommendation: messages.DoctorConfigRecommend,
	}
	lenient, lenientErr := config.LoadLenient(path)
	if lenientErr != nil {
		return result, config.Default()
	}
	return result, lenient
}

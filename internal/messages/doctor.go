package messages

// Doctor check names, status labels, and result lines.
const (
	DoctorHealthCheckFmt = "Checking host readiness for agentup\n\n"

	DoctorCheckNamePlatform  = "Platform"
	DoctorCheckNameRuntime   = "Node.js"
	DoctorCheckNameGit       = "Git"
	DoctorCheckNameCLI       = "Agent CLI"
	DoctorCheckNameConfig = "Config"
	DoctorCheckNameUpdate = "Update"

	DoctorStatusOKLabel   = "[ OK ]"
	DoctorStatusWarnLabel = "[WARN]"
	DoctorStatusFailLabel = "[FAIL]"

	// DoctorResultLineFmt formats one result line: status, check name, message.
	DoctorResultLineFmt        = "%s %s: %s\n"
	DoctorRecommendationPrefix = "       -> "
	DoctorRecommendationIndent = "          "

	DoctorPlatformOKFmt        = "%s with %s"
	DoctorPlatformRecommend    = "Bootstrap only supports apt, yum, dnf, or Homebrew hosts."
	DoctorNodeOKFmt            = "node %s (>= %d required)"
	DoctorNodeTooOldFmt        = "node %s is below the required major version %d"
	DoctorNodeTooOldRecommend  = "agentup will install a newer Node.js during bootstrap."
	DoctorNodeMissing          = "node not found on PATH"
	DoctorNodeMissingRecommend = "agentup will install Node.js during bootstrap."
	DoctorGitOKFmt             = "%s"
	DoctorGitMissing           = "git not found on PATH"
	DoctorGitMissingRecommend  = "agentup will install git during bootstrap."
	DoctorCLIOKFmt             = "%s found at %s"
	DoctorCLIMissingFmt        = "%s not found on PATH"
	DoctorCLIMissingRecommend  = "agentup will install it with 'npm install -g' during bootstrap."
	DoctorConfigDefaults       = "no config file; compiled-in defaults in effect"
	DoctorConfigLoadedFmt      = "loaded %s"
	DoctorConfigInvalidFmt     = "config file is invalid: %v"
	DoctorConfigRecommend      = "Fix the reported keys or delete the file to restore defaults."

	DoctorUpdateSkippedFmt          = "update check skipped (%s is set)"
	DoctorUpdateSkippedRecommendFmt = "Unset %s to re-enable update checks."
	DoctorUpdateRateLimited         = "update check rate limited by GitHub; try again later"
	DoctorUpdateFailedFmt           = "update check failed: %v"
	DoctorUpdateFailedRecommend     = "Check network connectivity to api.github.com."
	DoctorUpdateDevBuildFmt         = "running a dev build; latest release is %s"
	DoctorUpdateAvailableFmt        = "update available: %s (current %s)"
	DoctorUpdateAvailableRecommend  = "Grab the latest release from " + ReleasesBaseURL + "."
	DoctorUpToDateFmt               = "agentup %s is up to date"

	DoctorFailureSummary = "Doctor found problems. Bootstrap may still fix the missing dependencies."
	DoctorSuccessSummary = "Host looks ready."
	DoctorFailureError   = "doctor found problems"
)

package messages

// Update check messages. ReleasesBaseURL is referenced from doctor output too.
const (
	ReleasesBaseURL = "https://github.com/fenwick-labs/agentup/releases"

	UpdateCreateRequestErrFmt       = "create release request: %w"
	UpdateFetchLatestReleaseErrFmt  = "fetch latest release: %w"
	UpdateFetchLatestReleaseStatus  = "fetch latest release: unexpected status %s"
	UpdateDecodeLatestReleaseErrFmt = "decode latest release: %w"
	UpdateLatestReleaseMissingTag   = "latest release has no tag name"
	UpdateInvalidLatestReleaseFmt   = "invalid latest release tag %q: %w"
	UpdateInvalidCurrentVersionFmt  = "invalid current version %q: %w"
	UpdateInvalidVersionFmt         = "invalid version %q"
	UpdateInvalidVersionSegmentFmt  = "invalid version segment %q: %w"

	UpdateWarnCheckFailedFmt = "Warning: failed to check for updates: %v\n"
	UpdateWarnDevBuildFmt    = "Warning: running dev build; latest release is %s\n"
	UpdateWarnAvailableFmt   = "Warning: update available: %s (current %s); see " + ReleasesBaseURL + "\n"

	VersionRequired   = "version is required"
	VersionInvalidFmt = "version %q must be in the form vX.Y.Z or X.Y.Z"
)

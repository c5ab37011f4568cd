package messages

// Configuration loading and editing messages.
const (
	ConfigMissingFileFmt   = "read config file %s: %w"
	ConfigInvalidConfigFmt = "invalid config %s: %w"
	// ConfigUnrecognizedKeysFmt reports keys the config schema does not define.
	ConfigUnrecognizedKeysFmt   = "%s contains unrecognized keys: %v."
	ConfigValidationGuidance    = "Run 'agentup config set' to fix values, or delete the file to restore defaults."
	ConfigRepoURLRequiredFmt    = "%s: repo.url must not be empty"
	ConfigRepoURLSchemeFmt      = "%s: repo.url %q must be an https, ssh, or git URL"
	ConfigMinNodeMajorFmt       = "%s: runtime.min_node_major must be at least 1 (got %d)"
	ConfigCLIPackageRequired    = "%s: cli.package must not be empty"
	ConfigCLICommandRequired    = "%s: cli.command must not be empty"
	ConfigPrefixRequiredFmt     = "%s: workspace.prefix must not be empty"
	ConfigResolveHomeErrFmt     = "resolve home dir: %w"
	ConfigPatchParseFailedFmt   = "parse config: %w"
	ConfigPatchUnknownKeyFmt    = "unknown config key %q (known keys: %s)"
	ConfigPatchWriteFailedFmt   = "write config file %s: %w"
	ConfigPatchReadFailedFmt    = "read config file %s: %w"
	ConfigSetUpdatedFmt         = "Set %s = %s in %s\n"
	ConfigShowPathFmt           = "config file: %s\n"
	ConfigShowNoFileSuffix      = " (not present; defaults in effect)\n"
	ConfigValidationFailedScope = "config validation failed"
)

// Package config loads the optional user-level agentup configuration.
// Every value has a compiled-in default; a missing config file is the
// normal case and behaves exactly like the zero-configuration bootstrap.
package config

// Config is the full agentup configuration.
type Config struct {
	Repo      RepoConfig      `toml:"repo"`
	Runtime   RuntimeConfig   `toml:"runtime"`
	CLI       CLIConfig       `toml:"cli"`
	Workspace WorkspaceConfig `toml:"workspace"`
}

// RepoConfig names the starter repository cloned into each workspace.
type RepoConfig struct {
	URL string `toml:"url"`
}

// RuntimeConfig gates the Node.js runtime version.
type RuntimeConfig struct {
	MinNodeMajor int `toml:"min_node_major"`
}

// CLIConfig identifies the agent CLI npm package and its binary.
type CLIConfig struct {
	Package string `toml:"package"`
	Command string `toml:"command"`
}

// WorkspaceConfig controls workspace directory naming.
type WorkspaceConfig struct {
	Prefix string `toml:"prefix"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Repo:      RepoConfig{URL: "https://github.com/fenwick-labs/agent-starter.git"},
		Runtime:   RuntimeConfig{MinNodeMajor: 18},
		CLI:       CLIConfig{Package: "@google/gemini-cli", Command: "gemini"},
		Workspace: WorkspaceConfig{Prefix: "agent-workspace"},
	}
}

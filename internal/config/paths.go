package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/fenwick-labs/agentup/internal/messages"
)

// EnvConfigDir overrides the config directory location (used by tests and
// sandboxed environments).
const EnvConfigDir = "AGENTUP_CONFIG_DIR"

// Paths holds resolved locations of agentup's user-level files.
type Paths struct {
	Dir        string
	ConfigPath string
	EnvPath    string
	LockPath   string
}

// DefaultPaths resolves the user-level config directory, honoring the
// EnvConfigDir override and defaulting to ~/.config/agentup.
func DefaultPaths() (Paths, error) {
	dir := os.Getenv(EnvConfigDir)
	if dir == "" {
		home, err := homedir.Dir()
		if err != nil {
			return Paths{}, fmt.Errorf(messages.ConfigResolveHomeErrFmt, err)
		}
		dir = filepath.Join(home, ".config", "agentup")
	}
	return Paths{
		Dir:        dir,
		ConfigPath: filepath.Join(dir, "config.toml"),
		EnvPath:    filepath.Join(dir, ".env"),
		LockPath:   filepath.Join(dir, "bootstrap.lock"),
	}, nil
}

package config

import (
	"fmt"
	"strings"

	"github.com/fenwick-labs/agentup/internal/messages"
)

// validURLPrefixes are the repo.url forms git can clone over the network.
var validURLPrefixes = []string{"https://", "ssh://", "git://", "git@"}

// Validate ensures the config is complete and consistent.
func (c *Config) Validate(source string) error {
	url := strings.TrimSpace(c.Repo.URL)
	if url == "" {
		return fmt.Errorf(messages.ConfigRepoURLRequiredFmt, source)
	}
	if !hasValidURLPrefix(url) {
		return fmt.Errorf(messages.ConfigRepoURLSchemeFmt, source, c.Repo.URL)
	}
	if c.Runtime.MinNodeMajor < 1 {
		return fmt.Errorf(messages.ConfigMinNodeMajorFmt, source, c.Runtime.MinNodeMajor)
	}
	if strings.TrimSpace(c.CLI.Package) == "" {
		return fmt.Errorf(messages.ConfigCLIPackageRequired, source)
	}
	if strings.TrimSpace(c.CLI.Command) == "" {
		return fmt.Errorf(messages.ConfigCLICommandRequired, source)
	}
	if strings.TrimSpace(c.Workspace.Prefix) == "" {
		return fmt.Errorf(messages.ConfigPrefixRequiredFmt, source)
	}
	return nil
}

func hasValidURLPrefix(url string) bool {
	for _, prefix := range validURLPrefixes {
		if strings.HasPrefix(url, prefix) {
			return true
		}
	}
	return false
}

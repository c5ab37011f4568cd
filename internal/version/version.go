// Package version normalizes and classifies agentup version strings.
package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fenwick-labs/agentup/internal/messages"
)

var semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// IsDev reports whether raw identifies an unreleased development build.
func IsDev(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || trimmed == "dev"
}

// Normalize strips an optional leading v and validates the X.Y.Z form.
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf(messages.VersionRequired)
	}
	trimmed = strings.TrimPrefix(trimmed, "v")
	if !semverPattern.MatchString(trimmed) {
		return "", fmt.Errorf(messages.VersionInvalidFmt, raw)
	}
	return trimmed, nil
}

package sysdeps

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fenwick-labs/agentup/internal/messages"
	"github.com/fenwick-labs/agentup/internal/pkgmgr"
)

// Status reports the outcome of a single dependency check/install step.
type Status struct {
	// Version is the dependency's reported version string, when queried.
	Version string
	// Installed is true when an install was performed, false when the
	// dependency was already satisfied.
	Installed bool
}

// NodeVersion returns the raw output of `node --version`, e.g. "v20.11.1".
func NodeVersion(sys System) (string, error) {
	out, err := sys.Output("node", "--version")
	if err != nil {
		return "", fmt.Errorf(messages.SysdepsNodeVersionFmt, err)
	}
	return out, nil
}

// ParseNodeMajor extracts the major version from `node --version` output.
func ParseNodeMajor(raw string) (int, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	first, _, _ := strings.Cut(trimmed, ".")
	major, err := strconv.Atoi(first)
	if err != nil {
		return 0, fmt.Errorf(messages.SysdepsNodeParseVersionFmt, raw, err)
	}
	return major, nil
}

// NodeSatisfies reports the installed node version and whether it meets the
// minimum major. A missing or unparseable node counts as unsatisfied.
func NodeSatisfies(sys System, minMajor int) (string, bool) {
	if _, err := sys.LookPath("node"); err != nil {
		return "", false
	}
	raw, err := NodeVersion(sys)
	if err != nil {
		return "", false
	}
	major, err := ParseNodeMajor(raw)
	if err != nil {
		return raw, false
	}
	return raw, major >= minMajor
}

// EnsureNode verifies node meets minMajor, installing it via the package
// manager when absent or too old. Exactly one install attempt is made; a
// re-check failure afterward is fatal.
func EnsureNode(sys System, psys pkgmgr.System, mgr pkgmgr.Manager, minMajor int) (Status, error) {
	if version, ok := NodeSatisfies(sys, minMajor); ok {
		return Status{Version: version}, nil
	}

	name, args := mgr.InstallCommand(psys, mgr.NodePackages()...)
	if err := sys.Run(name, args...); err != nil {
		return Status{}, fmt.Errorf(messages.PkgmgrInstallFailedFmt, "node", mgr, err)
	}

	if _, err := sys.LookPath("node"); err != nil {
		return Status{}, fmt.Errorf(messages.SysdepsNodeStillMissing)
	}
	version, ok := NodeSatisfies(sys, minMajor)
	if !ok {
		return Status{}, fmt.Errorf(messages.SysdepsNodeTooOldFmt, version, minMajor, minMajor)
	}
	return Status{Version: version, Installed: true}, nil
}

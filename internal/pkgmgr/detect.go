package pkgmgr

import (
	"fmt"

	"github.com/fenwick-labs/agentup/internal/messages"
)

// linuxProbeOrder is the fixed priority order for Linux manager probing.
var linuxProbeOrder = []Manager{Apt, Yum, Dnf}

// Detect selects exactly one package manager for this host, or fails.
// This is a fatal precondition check with no retry: any host that is not a
// recognized Linux or macOS setup aborts the run.
func Detect(sys System) (Manager, error) {
	switch sys.GOOS() {
	case "darwin":
		if _, err := sys.LookPath(Brew.binary()); err != nil {
			return "", fmt.Errorf(messages.PkgmgrBrewMissing)
		}
		return Brew, nil
	case "linux":
		for _, m := range linuxProbeOrder {
			if _, err := sys.LookPath(m.binary()); err == nil {
				return m, nil
			}
		}
		return "", fmt.Errorf(messages.PkgmgrNoManagerFound)
	default:
		return "", fmt.Errorf(messages.PkgmgrUnsupportedPlatformFmt, sys.GOOS())
	}
}

// Package pkgmgr detects and drives the host's system package manager.
package pkgmgr

import (
	"os"
	"os/exec"
	"runtime"
)

// Manager identifies one of the supported system package managers.
type Manager string

// Supported managers, in Linux probe priority order (brew is macOS-only).
const (
	Apt  Manager = "apt"
	Yum  Manager = "yum"
	Dnf  Manager = "dnf"
	Brew Manager = "brew"
)

// System abstracts OS probing needed by detection and command construction.
// The interface is package-local so tests can run in parallel without shared
// global state; other packages define their own System interfaces.
type System interface {
	GOOS() string
	LookPath(name string) (string, error)
	Geteuid() int
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// GOOS returns the running program's operating system target.
func (RealSystem) GOOS() string {
	return runtime.GOOS
}

// LookPath searches for an executable in the directories named by PATH.
func (RealSystem) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Geteuid returns the numeric effective user id of the caller.
func (RealSystem) Geteuid() int {
	return os.Geteuid()
}

// binary returns the executable probed for and invoked for this manager.
func (m Manager) binary() string {
	if m == Apt {
		return "apt-get"
	}
	return string(m)
}

// UpdateCommand returns the argv that refreshes the manager's package index.
func (m Manager) UpdateCommand(sys System) (string, []string) {
	switch m {
	case Apt:
		return m.sudoWrap(sys, "apt-get", "update", "-y")
	case Yum:
		return m.sudoWrap(sys, "yum", "makecache", "-y")
	case Dnf:
		return m.sudoWrap(sys, "dnf", "makecache", "-y")
	default:
		return "brew", []string{"update"}
	}
}

// InstallCommand returns the argv that installs the named packages.
func (m Manager) InstallCommand(sys System, pkgs ...string) (string, []string) {
	switch m {
	case Apt:
		return m.sudoWrap(sys, "apt-get", append([]string{"install", "-y"}, pkgs...)...)
	case Yum:
		return m.sudoWrap(sys, "yum", append([]string{"install", "-y"}, pkgs...)...)
	case Dnf:
		return m.sudoWrap(sys, "dnf", append([]string{"install", "-y"}, pkgs...)...)
	default:
		return "brew", append([]string{"install"}, pkgs...)
	}
}

// NodePackages returns the package names that provide node and npm.
func (m Manager) NodePackages() []string {
	switch m {
	case Apt:
		return []string{"nodejs", "npm"}
	case Yum, Dnf:
		return []string{"nodejs", "npm"}
	default:
		return []string{"node"}
	}
}

// GitPackages returns the package names that provide git.
func (m Manager) GitPackages() []string {
	return []string{"git"}
}

// sudoWrap prefixes the argv with sudo on Linux when not running as root.
// Homebrew refuses to run as root, so brew commands are never wrapped.
func (m Manager) sudoWrap(sys System, name string, args ...string) (string, []string) {
	if sys.Geteuid() == 0 {
		return name, args
	}
	return "sudo", append([]string{name}, args...)
}

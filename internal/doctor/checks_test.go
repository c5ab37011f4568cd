package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenwick-labs/agentup/internal/config"
	"github.com/fenwick-labs/agentup/internal/pkgmgr"
)

type fakePkgSystem struct {
	goos     string
	binaries map[string]bool
}

func (f fakePkgSystem) GOOS() string { return f.goos }

func (f fakePkgSystem) LookPath(name string) (string, error) {
	if f.binaries[name] {
		return "/usr/bin/" + name, nil
	}
	return "", fmt.Errorf("%s not found", name)
}

func (f fakePkgSystem) Geteuid() int { return 1000 }

type fakeDepSystem struct {
	binaries map[string]bool
	outputs  map[string]string
}

func (f fakeDepSystem) LookPath(name string) (string, error) {
	if f.binaries[name] {
		return "/usr/local/bin/" + name, nil
	}
	return "", fmt.Errorf("%s not found", name)
}

func (f fakeDepSystem) Output(name string, args ...string) (string, error) {
	key := name
	for _, a := range args {
		key += " " + a
	}
	if out, ok := f.outputs[key]; ok {
		return out, nil
	}
	return "", fmt.Errorf("no output for %s", key)
}

func (f fakeDepSystem) Run(name string, args ...string) error {
	return fmt.Errorf("doctor must not run %s", name)
}

func TestCheckPlatformSupported(t *testing.T) {
	result, mgr := CheckPlatform(fakePkgSystem{goos: "linux", binaries: map[string]bool{"dnf": true}})
	assert.Equal(t, StatusOK, result.Status)
	assert.Equal(t, pkgmgr.Dnf, mgr)
	assert.Contains(t, result.Message, "dnf")
}

func TestCheckPlatformUnsupported(t *testing.T) {
	result, _ := CheckPlatform(fakePkgSystem{goos: "windows"})
	assert.Equal(t, StatusFail, result.Status)
	assert.NotEmpty(t, result.Recommendation)
}

func TestCheckNode(t *testing.T) {
	ok := fakeDepSystem{
		binaries: map[string]bool{"node": true},
		outputs:  map[string]string{"node --version": "v20.1.0"},
	}
	result := CheckNode(ok, 18)
	assert.Equal(t, StatusOK, result.Status)
	assert.Contains(t, result.Message, "v20.1.0")

	old := fakeDepSystem{
		binaries: map[string]bool{"node": true},
		outputs:  map[string]string{"node --version": "v16.0.0"},
	}
	result = CheckNode(old, 18)
	assert.Equal(t, StatusWarn, result.Status)

	result = CheckNode(fakeDepSystem{binaries: map[string]bool{}}, 18)
	assert.Equal(t, StatusWarn, result.Status)
	assert.Equal(t, "node not found on PATH", result.Message)
}

func TestCheckGitEchoesVersionVerbatim(t *testing.T) {
	sys := fakeDepSystem{
		binaries: map[string]bool{"git": true},
		outputs:  map[string]string{"git --version": "git version 2.44.0"},
	}
	result := CheckGit(sys)
	assert.Equal(t, StatusOK, result.Status)
	assert.Equal(t, "git version 2.44.0", result.Message)

	result = CheckGit(fakeDepSystem{binaries: map[string]bool{}})
	assert.Equal(t, StatusWarn, result.Status)
}

func TestCheckCLI(t *testing.T) {
	result := CheckCLI(fakeDepSystem{binaries: map[string]bool{"gemini": true}}, "gemini")
	assert.Equal(t, StatusOK, result.Status)
	assert.Contains(t, result.Message, "/usr/local/bin/gemini")

	result = CheckCLI(fakeDepSystem{binaries: map[string]bool{}}, "gemini")
	assert.Equal(t, StatusWarn, result.Status)
}

func TestCheckConfigMissingFileUsesDefaults(t *testing.T) {
	result, cfg := CheckConfig(filepath.Join(t.TempDir(), "config.toml"))
	assert.Equal(t, StatusOK, result.Status)
	assert.Equal(t, config.Default(), cfg)
}

func TestCheckConfigInvalidFallsBackLeniently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[runtime]\nmin_node_major = 0\n[cli]\ncommand = \"qwen\"\n"), 0o644))

	result, cfg := CheckConfig(path)
	assert.Equal(t, StatusFail, result.Status)
	// Lenient load still surfaces the parseable values.
	assert.Equal(t, "qwen", cfg.CLI.Command)
}

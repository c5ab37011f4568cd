package bootstrap

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fenwick-labs/agentup/internal/config"
	"github.com/fenwick-labs/agentup/internal/tasklog"
)

type fakePkgSystem struct {
	goos     string
	binaries map[string]bool
	euid     int
}

func (f *fakePkgSystem) GOOS() string { return f.goos }

func (f *fakePkgSystem) LookPath(name string) (string, error) {
	if f.binaries[name] {
		return "/usr/bin/" + name, nil
	}
	return "", fmt.Errorf("%s not found", name)
}

func (f *fakePkgSystem) Geteuid() int { return f.euid }

// fakeDepSystem tracks which binaries exist and records every Run call.
// onRun lets a test flip state when an install command executes, modeling
// the package manager actually putting binaries on PATH.
type fakeDepSystem struct {
	binaries map[string]bool
	versions map[string]string
	runs     [][]string
	runErr   map[string]error
	onRun    func(argv []string)
}

func (f *fakeDepSystem) LookPath(name string) (string, error) {
	if f.binaries[name] {
		return "/usr/bin/" + name, nil
	}
	return "", fmt.Errorf("%s not found", name)
}

func (f *fakeDepSystem) Output(name string, args ...string) (string, error) {
	if !f.binaries[name] {
		return "", fmt.Errorf("%s not found", name)
	}
	return f.versions[name], nil
}

func (f *fakeDepSystem) Run(name string, args ...string) error {
	argv := append([]string{name}, args...)
	f.runs = append(f.runs, argv)
	if err := f.runErr[strings.Join(argv, " ")]; err != nil {
		return err
	}
	if f.onRun != nil {
		f.onRun(argv)
	}
	return nil
}

type fakeGitSystem struct {
	runs    [][]string
	err     error
	makeDir bool
}

func (f *fakeGitSystem) Run(name string, args ...string) error {
	f.runs = append(f.runs, append([]string{name}, args...))
	if f.err != nil {
		return f.err
	}
	if f.makeDir && len(args) == 3 {
		return os.MkdirAll(args[2], 0o755)
	}
	return nil
}

type fakeLaunchSystem struct {
	command string
	dir     string
	env     []string
	calls   int
	err     error
}

func (f *fakeLaunchSystem) RunInteractive(command string, dir string, env []string) error {
	f.calls++
	f.command = command
	f.dir = dir
	f.env = env
	return f.err
}

type fakeConfirm struct {
	calls int
	err   error
}

func (f *fakeConfirm) Confirm(title string) error {
	f.calls++
	return f.err
}

func testOptions(t *testing.T, dep *fakeDepSystem, git *fakeGitSystem, cli *fakeLaunchSystem) Options {
	t.Helper()
	cfgDir := t.TempDir()
	workDir := t.TempDir()
	return Options{
		Config: config.Default(),
		Paths: config.Paths{
			Dir:        cfgDir,
			ConfigPath: filepath.Join(cfgDir, "config.toml"),
			EnvPath:    filepath.Join(cfgDir, ".env"),
			LockPath:   filepath.Join(cfgDir, "agentup.lock"),
		},
		Yes:          true,
		Interactive:  func() bool { return true },
		Stdout:       &bytes.Buffer{},
		Stderr:       &bytes.Buffer{},
		PkgSystem:    &fakePkgSystem{goos: "linux", binaries: map[string]bool{"apt-get": true}, euid: 0},
		DepSystem:    dep,
		GitSystem:    git,
		LaunchSystem: cli,
		Getwd:        func() (string, error) { return workDir, nil },
		Environ:      func() []string { return []string{"PATH=/usr/bin"} },
	}
}

func TestRunFreshHostInstallsEverythingInOrder(t *testing.T) {
	dep := &fakeDepSystem{
		binaries: map[string]bool{"npm": true},
		versions: map[string]string{},
	}
	dep.onRun = func(argv []string) {
		switch strings.Join(argv, " ") {
		case "apt-get install -y nodejs npm":
			dep.binaries["node"] = true
			dep.versions["node"] = "v20.11.1"
		case "apt-get install -y git":
			dep.binaries["git"] = true
			dep.versions["git"] = "git version 2.44.0"
		case "npm install -g @google/gemini-cli":
			dep.binaries["gemini"] = true
		}
	}
	git := &fakeGitSystem{makeDir: true}
	cli := &fakeLaunchSystem{}

	opts := testOptions(t, dep, git, cli)
	require.NoError(t, Run(opts))

	var commands []string
	for _, argv := range dep.runs {
		commands = append(commands, strings.Join(argv, " "))
	}
	assert.Equal(t, []string{
		"apt-get update -y",
		"apt-get install -y nodejs npm",
		"apt-get install -y git",
		"npm install -g @google/gemini-cli",
	}, commands)

	require.Len(t, git.runs, 1)
	assert.Equal(t, "git", git.runs[0][0])
	assert.Equal(t, "clone", git.runs[0][1])
	assert.Equal(t, config.Default().Repo.URL, git.runs[0][2])

	assert.Equal(t, 1, cli.calls)
	assert.Equal(t, "gemini", cli.command)
	assert.Equal(t, git.runs[0][3], cli.dir)
}

func TestRunEverythingPresentSkipsInstalls(t *testing.T) {
	dep := &fakeDepSystem{
		binaries: map[string]bool{"node": true, "git": true, "npm": true, "gemini": true},
		versions: map[string]string{"node": "v22.3.0", "git": "git version 2.44.0"},
	}
	git := &fakeGitSystem{makeDir: true}
	cli := &fakeLaunchSystem{}
	confirm := &fakeConfirm{err: errors.New("confirm must not be called")}

	opts := testOptions(t, dep, git, cli)
	opts.Yes = false
	opts.Confirm = confirm
	require.NoError(t, Run(opts))

	require.Len(t, dep.runs, 1)
	assert.Equal(t, []string{"apt-get", "update", "-y"}, dep.runs[0])
	assert.Equal(t, 0, confirm.calls)
	assert.Equal(t, 1, cli.calls)
}

func TestRunOldNodeTriggersInstall(t *testing.T) {
	dep := &fakeDepSystem{
		binaries: map[string]bool{"node": true, "git": true, "npm": true, "gemini": true},
		versions: map[string]string{"node": "v16.20.0", "git": "git version 2.44.0"},
	}
	dep.onRun = func(argv []string) {
		if strings.Join(argv, " ") == "apt-get install -y nodejs npm" {
			dep.versions["node"] = "v20.11.1"
		}
	}
	git := &fakeGitSystem{makeDir: true}
	cli := &fakeLaunchSystem{}

	require.NoError(t, Run(testOptions(t, dep, git, cli)))

	var commands []string
	for _, argv := range dep.runs {
		commands = append(commands, strings.Join(argv, " "))
	}
	assert.Contains(t, commands, "apt-get install -y nodejs npm")
}

func TestRunCloneFailureSkipsLaunch(t *testing.T) {
	dep := &fakeDepSystem{
		binaries: map[string]bool{"node": true, "git": true, "npm": true, "gemini": true},
		versions: map[string]string{"node": "v22.3.0", "git": "git version 2.44.0"},
	}
	git := &fakeGitSystem{err: errors.New("remote hung up")}
	cli := &fakeLaunchSystem{}

	err := Run(testOptions(t, dep, git, cli))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clone")
	assert.Equal(t, 0, cli.calls)
}

func TestRunConfirmDeclinedInstallsNothing(t *testing.T) {
	dep := &fakeDepSystem{binaries: map[string]bool{"npm": true}}
	git := &fakeGitSystem{}
	cli := &fakeLaunchSystem{}
	confirm := &fakeConfirm{err: errors.New("aborted: nothing was installed")}

	opts := testOptions(t, dep, git, cli)
	opts.Yes = false
	opts.Confirm = confirm

	err := Run(opts)
	require.Error(t, err)
	assert.Equal(t, 1, confirm.calls)
	assert.Empty(t, dep.runs)
	assert.Empty(t, git.runs)
	assert.Equal(t, 0, cli.calls)
}

func TestRunNonInteractiveSkipsPrompt(t *testing.T) {
	dep := &fakeDepSystem{binaries: map[string]bool{"npm": true}}
	dep.onRun = func(argv []string) {
		switch strings.Join(argv, " ") {
		case "apt-get install -y nodejs npm":
			dep.binaries["node"] = true
			dep.versions["node"] = "v20.11.1"
		case "apt-get install -y git":
			dep.binaries["git"] = true
			dep.versions["git"] = "git version 2.44.0"
		case "npm install -g @google/gemini-cli":
			dep.binaries["gemini"] = true
		}
	}
	dep.versions = map[string]string{}
	git := &fakeGitSystem{makeDir: true}
	cli := &fakeLaunchSystem{}
	confirm := &fakeConfirm{err: errors.New("confirm must not be called")}

	opts := testOptions(t, dep, git, cli)
	opts.Yes = false
	opts.Interactive = func() bool { return false }
	opts.Confirm = confirm

	require.NoError(t, Run(opts))
	assert.Equal(t, 0, confirm.calls)
	assert.Equal(t, 1, cli.calls)
}

func TestRunIndexRefreshFailureIsFatal(t *testing.T) {
	dep := &fakeDepSystem{
		binaries: map[string]bool{"node": true, "git": true, "npm": true, "gemini": true},
		versions: map[string]string{"node": "v22.3.0", "git": "git version 2.44.0"},
		runErr:   map[string]error{"apt-get update -y": errors.New("mirror unreachable")},
	}
	git := &fakeGitSystem{}
	cli := &fakeLaunchSystem{}

	err := Run(testOptions(t, dep, git, cli))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package index")
	assert.Empty(t, git.runs)
	assert.Equal(t, 0, cli.calls)
}

func TestRunNoLaunchStopsAfterClone(t *testing.T) {
	dep := &fakeDepSystem{
		binaries: map[string]bool{"node": true, "git": true, "npm": true, "gemini": true},
		versions: map[string]string{"node": "v22.3.0", "git": "git version 2.44.0"},
	}
	git := &fakeGitSystem{makeDir: true}
	cli := &fakeLaunchSystem{}

	opts := testOptions(t, dep, git, cli)
	opts.NoLaunch = true
	stdout := &bytes.Buffer{}
	opts.Stdout = stdout

	require.NoError(t, Run(opts))
	require.Len(t, git.runs, 1)
	assert.Equal(t, 0, cli.calls)
	assert.Contains(t, stdout.String(), "launch skipped")
}

func TestRunScaffoldsTaskLogIntoClone(t *testing.T) {
	dep := &fakeDepSystem{
		binaries: map[string]bool{"node": true, "git": true, "npm": true, "gemini": true},
		versions: map[string]string{"node": "v22.3.0", "git": "git version 2.44.0"},
	}
	git := &fakeGitSystem{makeDir: true}
	cli := &fakeLaunchSystem{}

	opts := testOptions(t, dep, git, cli)
	require.NoError(t, Run(opts))

	require.Len(t, git.runs, 1)
	cloneDir := git.runs[0][3]
	data, err := os.ReadFile(filepath.Join(cloneDir, tasklog.FileName))
	require.NoError(t, err)
	tmpl, err := tasklog.Template()
	require.NoError(t, err)
	assert.Equal(t, tmpl, string(data))
}

func TestRepoDirName(t *testing.T) {
	cases := map[string]string{
		"https://github.com/fenwick-labs/agent-starter.git": "agent-starter",
		"https://github.com/fenwick-labs/agent-starter":     "agent-starter",
		"git@github.com:fenwick-labs/agent-starter.git":     "agent-starter",
		"ssh://git@host/team/project.git":                   "project",
	}
	for url, want := range cases {
		assert.Equal(t, want, repoDirName(url), url)
	}
}

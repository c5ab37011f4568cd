package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestMainVersion(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"agentup", "--version"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Fatalf("expected version output, got %q", out.String())
	}
}

func TestMainUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	err := execute([]string{"agentup", "unknown"}, &out, &out)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestRunMainSuccess(t *testing.T) {
	var out bytes.Buffer
	called := false
	runMain([]string{"agentup", "--version"}, &out, &out, func(code int) {
		called = true
	})
	if called {
		t.Fatalf("unexpected exit")
	}
}

func TestRunMainError(t *testing.T) {
	var out bytes.Buffer
	code := 0
	runMain([]string{"agentup", "unknown"}, &out, &out, func(exitCode int) {
		code = exitCode
	})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "unknown command") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestRunMainSilentExit(t *testing.T) {
	orig := executeFunc
	defer func() { executeFunc = orig }()
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error {
		return &SilentExitError{Code: 3}
	}

	var out bytes.Buffer
	code := 0
	runMain([]string{"agentup"}, &out, &out, func(exitCode int) { code = exitCode })
	if code != 3 {
		t.Fatalf("expected exit code 3, got %d", code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestRunMainGenericError(t *testing.T) {
	orig := executeFunc
	defer func() { executeFunc = orig }()
	executeFunc = func(args []string, stdout io.Writer, stderr io.Writer) error {
		return errors.New("pipeline failed")
	}

	var out bytes.Buffer
	code := 0
	runMain([]string{"agentup"}, &out, &out, func(exitCode int) { code = exitCode })
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "pipeline failed") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, BuildDate
	defer func() { Version, Commit, BuildDate = origVersion, origCommit, origDate }()

	Version, Commit, BuildDate = "1.2.3", "unknown", "unknown"
	if got := versionString(); got != "1.2.3" {
		t.Fatalf("expected bare version, got %q", got)
	}

	Commit, BuildDate = "abc1234", "2026-01-01"
	got := versionString()
	if !strings.Contains(got, "abc1234") || !strings.Contains(got, "2026-01-01") {
		t.Fatalf("expected metadata in version string, got %q", got)
	}
}

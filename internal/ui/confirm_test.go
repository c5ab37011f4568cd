package ui

import (
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func swapRunForm(t *testing.T, fn func(form *huh.Form) error) {
	t.Helper()
	orig := runFormFunc
	runFormFunc = fn
	t.Cleanup(func() { runFormFunc = orig })
}

func TestConfirmRequiresTerminal(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return false }}
	err := ui.Confirm("Install missing dependencies with apt?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}

func TestConfirmAccept(t *testing.T) {
	swapRunForm(t, func(form *huh.Form) error {
		// The confirm field defaults to yes; returning nil without
		// touching it models the user accepting.
		return nil
	})
	ui := &HuhUI{isTerminal: func() bool { return true }}
	require.NoError(t, ui.Confirm("install?"))
}

func TestConfirmEscDeclines(t *testing.T) {
	swapRunForm(t, func(form *huh.Form) error {
		return huh.ErrUserAborted
	})
	ui := &HuhUI{isTerminal: func() bool { return true }}

	// An abort without the key filter having seen Ctrl+C means Esc;
	// that counts as a decline.
	err := ui.Confirm("install?")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDeclined))
}

func TestConfirmCtrlCPropagatesAbort(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	swapRunForm(t, func(form *huh.Form) error {
		ui.ctrlCAbort = true
		return huh.ErrUserAborted
	})

	err := ui.Confirm("install?")
	require.Error(t, err)
	assert.True(t, errors.Is(err, huh.ErrUserAborted))
}

func TestConfirmFormError(t *testing.T) {
	boom := errors.New("render failed")
	swapRunForm(t, func(form *huh.Form) error { return boom })
	ui := &HuhUI{isTerminal: func() bool { return true }}
	err := ui.Confirm("install?")
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

// Package ui implements the interactive confirmation prompt shown before
// system packages are installed.
package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/fenwick-labs/agentup/internal/messages"
	"github.com/fenwick-labs/agentup/internal/terminal"
)

// ErrDeclined reports that the user answered no.
var ErrDeclined = errors.New(messages.ConfirmAborted)

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(title string) error
}

// HuhUI implements Confirmer using charmbracelet/huh.
type HuhUI struct {
	isTerminal func() bool
	ctrlCAbort bool // set by the key filter during form.Run; reset per form
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI using the default terminal check.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

// Confirm asks title and returns nil on yes, ErrDeclined on no, and
// huh.ErrUserAborted when the user pressed Ctrl+C.
func (ui *HuhUI) Confirm(title string) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}

	value := true
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Install").
		Negative("Abort").
		Value(&value)

	// Both Esc and Ctrl+C trigger form abort; the key filter distinguishes
	// them via ctrlCAbort.
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))

	ui.ctrlCAbort = false
	form := huh.NewForm(huh.NewGroup(field)).
		WithKeyMap(km).
		WithProgramOptions(tea.WithFilter(ui.keyFilter))

	if err := runFormFunc(form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) && !ui.ctrlCAbort {
			// Esc backs out of the prompt; treat it as a decline.
			return ErrDeclined
		}
		return err
	}
	if !value {
		return ErrDeclined
	}
	return nil
}

// ensureInteractive returns an error when no terminal is attached.
func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return fmt.Errorf(messages.ConfirmRequiresTTY)
}

// keyFilter records Ctrl+C so Confirm can distinguish a hard interrupt from
// other form aborts, and maps InterruptMsg to QuitMsg so bubbletea clears
// the form output on the graceful shutdown path.
func (ui *HuhUI) keyFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyCtrlC {
		ui.ctrlCAbort = true
	}
	if _, ok := msg.(tea.InterruptMsg); ok {
		return tea.QuitMsg{}
	}
	return msg
}

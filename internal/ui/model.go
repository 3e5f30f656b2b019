// Package ui is the interactive breach checker screen. It follows the Elm
// architecture bubbletea imposes: Update is the single serialized transition
// point for both keystrokes and completed lookups, so a late lookup result
// can never race a newer edit into an inconsistent state.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/net/context"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"breachlook/pkg/hibp"
)

// lookupDoneMsg carries a finished lookup back into Update. The id ties it
// to the submission that started it; the session drops stale ones.
type lookupDoneMsg struct {
	id     uint64
	result hibp.BreachResult
	err    error
}

type Model struct {
	input    textinput.Model
	lookuper *hibp.Lookuper
	session  hibp.Session
	password string
	digest   string
	show     bool
	styles   Styles
	printer  *message.Printer
}

func NewModel(lookuper *hibp.Lookuper) Model {
	ti := textinput.New()
	ti.Placeholder = "input password"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.Focus()

	return Model{
		input:    ti,
		lookuper: lookuper,
		styles:   DefaultStyles(),
		printer:  message.NewPrinter(language.English),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlR:
			m.show = !m.show
			if m.show {
				m.input.EchoMode = textinput.EchoNormal
			} else {
				m.input.EchoMode = textinput.EchoPassword
			}
			return m, nil
		case tea.KeyEnter:
			return m.submit()
		}
	case lookupDoneMsg:
		if msg.err != nil {
			m.session.Fail(msg.id, msg.err.Error())
		} else {
			m.session.Resolve(msg.id, msg.result)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Editing invalidates the previous result before any resubmission.
	if value := m.input.Value(); value != m.password {
		m.password = value
		m.digest = hibp.Digest(value)
		m.session.Reset()
	}

	return m, cmd
}

// submit starts one lookup. Submission is gated on a non-empty password, the
// orchestrator is never handed an empty digest from here.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.password == "" {
		return m, nil
	}

	id := m.session.Begin()
	password := m.password
	lookuper := m.lookuper
	return m, func() tea.Msg {
		result, err := lookuper.Lookup(context.Background(), password)
		return lookupDoneMsg{id: id, result: result, err: err}
	}
}

func (m Model) View() string {
	view := m.styles.Title.Render("Is this password in a data breach?") + "\n"
	view += m.styles.Digest.Render(fmt.Sprintf("SHA-1: %s", m.digest)) + "\n"
	view += m.input.View() + "\n"
	view += m.message() + "\n"
	view += m.styles.Hint.Render("enter submit · ctrl+r show/hide password · esc quit")
	return view
}

func (m Model) message() string {
	outcome := m.session.Outcome()
	switch outcome.Kind {
	case hibp.Searching:
		return m.styles.Secondary.Render("Searching...")
	case hibp.Resolved:
		if outcome.Result.Sites == 0 {
			return m.styles.Success.Render("No breaches using this password! It seems this password is safe to use.")
		}
		return m.styles.Danger.Render(m.printer.Sprintf(
			"This password has been found %d time(s) across %d website(s)\nYou should not use this password!",
			outcome.Result.Occurrences, outcome.Result.Sites))
	case hibp.Failed:
		return m.styles.Danger.Render(fmt.Sprintf("Error: %s", outcome.Err))
	}
	return ""
}

// Run owns the program loop until the user quits.
func Run(lookuper *hibp.Lookuper) error {
	_, err := tea.NewProgram(NewModel(lookuper), tea.WithAltScreen()).Run()
	return err
}

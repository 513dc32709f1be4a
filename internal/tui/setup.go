package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lox/teamgen/internal/roster"
)

// Focus positions before the player slots.
const (
	focusTeamCount = iota
	focusPlayersPerTeam
	focusFirstPlayer
)

const maxNameLength = 40

// setupModel is the form for the team configuration and player names.
type setupModel struct {
	teamCount      int
	playersPerTeam int
	names          []textinput.Model
	focus          int
	err            error
}

func newSetupModel(in roster.Input) setupModel {
	m := setupModel{
		teamCount:      max(roster.MinTeamCount, in.Config.TeamCount),
		playersPerTeam: max(roster.MinPlayersPerTeam, in.Config.PlayersPerTeam),
	}

	names := in.Names
	if len(names) == 0 {
		names = []string{""}
	}
	for _, name := range names {
		m.names = append(m.names, newNameInput(name))
	}
	m.renumber()
	m.focusOn(focusFirstPlayer)

	return m
}

func newNameInput(value string) textinput.Model {
	ti := textinput.New()
	ti.CharLimit = maxNameLength
	ti.Width = maxNameLength
	ti.Prompt = "› "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.SetValue(value)
	return ti
}

// Names returns the raw value of every name slot.
func (m setupModel) Names() []string {
	out := make([]string, len(m.names))
	for i, ti := range m.names {
		out[i] = ti.Value()
	}
	return out
}

func (m setupModel) fieldCount() int {
	return focusFirstPlayer + len(m.names)
}

// focusOn moves focus to field, blurring every other name slot.
func (m *setupModel) focusOn(field int) tea.Cmd {
	m.focus = max(0, min(field, m.fieldCount()-1))

	var cmd tea.Cmd
	for i := range m.names {
		if i == m.focus-focusFirstPlayer {
			cmd = m.names[i].Focus()
		} else {
			m.names[i].Blur()
		}
	}
	return cmd
}

func (m *setupModel) renumber() {
	for i := range m.names {
		m.names[i].Placeholder = fmt.Sprintf("Player %d", i+1)
	}
}

func (m *setupModel) addPlayer() tea.Cmd {
	m.names = append(m.names, newNameInput(""))
	m.renumber()
	return m.focusOn(m.fieldCount() - 1)
}

// removePlayer drops the focused name slot. The last remaining slot is kept.
func (m *setupModel) removePlayer() tea.Cmd {
	idx := m.focus - focusFirstPlayer
	if idx < 0 || len(m.names) <= 1 {
		return nil
	}
	m.names = append(m.names[:idx], m.names[idx+1:]...)
	m.renumber()
	return m.focusOn(m.focus)
}

func (m *setupModel) adjust(delta int) {
	switch m.focus {
	case focusTeamCount:
		m.teamCount = max(roster.MinTeamCount, m.teamCount+delta)
	case focusPlayersPerTeam:
		m.playersPerTeam = max(roster.MinPlayersPerTeam, m.playersPerTeam+delta)
	}
}

// setError records a failed submission and focuses the offending slot.
func (m *setupModel) setError(err error) tea.Cmd {
	m.err = err

	var empty *roster.EmptyNameError
	if errors.As(err, &empty) {
		return m.focusOn(focusFirstPlayer + empty.Index)
	}
	return nil
}

// Update handles form editing keys. Submission and quitting are handled by
// the parent model.
func (m setupModel) Update(msg tea.Msg) (setupModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocusedInput(msg)
	}

	var cmd tea.Cmd
	switch key.String() {
	case "tab", "down":
		cmd = m.focusOn((m.focus + 1) % m.fieldCount())
		return m, cmd
	case "shift+tab", "up":
		cmd = m.focusOn((m.focus - 1 + m.fieldCount()) % m.fieldCount())
		return m, cmd
	case "ctrl+n":
		cmd = m.addPlayer()
		return m, cmd
	case "ctrl+d":
		cmd = m.removePlayer()
		return m, cmd
	}

	if m.focus < focusFirstPlayer {
		switch key.String() {
		case "+", "=", "right":
			m.adjust(1)
		case "-", "left":
			m.adjust(-1)
		}
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m setupModel) updateFocusedInput(msg tea.Msg) (setupModel, tea.Cmd) {
	idx := m.focus - focusFirstPlayer
	if idx < 0 || idx >= len(m.names) {
		return m, nil
	}
	var cmd tea.Cmd
	m.names[idx], cmd = m.names[idx].Update(msg)
	return m, cmd
}

func (m setupModel) View() string {
	numberField := func(field int, label string, value int) string {
		labelStyle := LabelStyle
		if m.focus == field {
			labelStyle = FocusedLabelStyle
		}
		return labelStyle.Render(label) + "\n" +
			InfoStyle.Render("  [-] ") + ValueStyle.Render(fmt.Sprintf("%d", value)) + InfoStyle.Render(" [+]")
	}

	configPane := PaneStyle
	if m.focus < focusFirstPlayer {
		configPane = FocusedPaneStyle
	}
	config := configPane.Render(lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("Team Configuration"),
		InfoStyle.Render("Set up your team parameters"),
		"",
		numberField(focusTeamCount, "Number of Teams", m.teamCount),
		"",
		numberField(focusPlayersPerTeam, "Target Players Per Team", m.playersPerTeam),
	))

	var slots strings.Builder
	for i, ti := range m.names {
		if i > 0 {
			slots.WriteString("\n")
		}
		slots.WriteString(ti.View())
	}

	playersPane := PaneStyle
	if m.focus >= focusFirstPlayer {
		playersPane = FocusedPaneStyle
	}
	players := playersPane.Render(lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("Player Names"),
		InfoStyle.Render("Add all the players who will be in teams"),
		"",
		slots.String(),
	))

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("TEAM GENERATOR"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Create balanced teams for your gaming sessions"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, config, " ", players))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render("✗ " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(InfoStyle.Render(
		"Tab/↑↓ move • +/- adjust • Ctrl+N add player • Ctrl+D remove player • Enter generate • Esc quit"))

	return b.String()
}

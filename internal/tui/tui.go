package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/teamgen/internal/partition"
	"github.com/lox/teamgen/internal/roster"
	"github.com/lox/teamgen/internal/session"
)

type screen int

const (
	screenSplash screen = iota
	screenSetup
	screenResults
)

func (s screen) String() string {
	switch s {
	case screenSplash:
		return "splash"
	case screenSetup:
		return "setup"
	case screenResults:
		return "results"
	default:
		return "unknown"
	}
}

// Model is the Bubble Tea model for the team generator. It renders the
// session and forwards user events to it; all generation rules live in the
// session.
type Model struct {
	session *session.Session
	logger  *log.Logger

	screen screen
	splash splashModel
	setup  setupModel
	teams  partition.TeamSet

	width    int
	height   int
	quitting bool
}

type modelConfig struct {
	clock      quartz.Clock
	splash     bool
	splashStep time.Duration
	defaults   *roster.Input
}

// Option configures a Model.
type Option func(*modelConfig)

// WithSplash shows the loading splash first, advancing one step per interval.
func WithSplash(interval time.Duration) Option {
	return func(c *modelConfig) {
		c.splash = true
		c.splashStep = interval
	}
}

// WithClock sets the clock driving the splash timers.
func WithClock(clock quartz.Clock) Option {
	return func(c *modelConfig) {
		c.clock = clock
	}
}

// WithDefaults pre-fills the setup form. Without it the form starts from the
// session's setup defaults.
func WithDefaults(in roster.Input) Option {
	return func(c *modelConfig) {
		clone := in.Clone()
		c.defaults = &clone
	}
}

// NewModel creates a model bound to sess.
func NewModel(sess *session.Session, logger *log.Logger, opts ...Option) *Model {
	cfg := &modelConfig{clock: quartz.NewReal()}
	for _, opt := range opts {
		opt(cfg)
	}

	defaults := sess.SetupDefaults()
	if cfg.defaults != nil {
		defaults = *cfg.defaults
	}

	m := &Model{
		session: sess,
		logger:  logger.WithPrefix("tui"),
		screen:  screenSetup,
		setup:   newSetupModel(defaults),
	}
	if cfg.splash {
		m.screen = screenSplash
		m.splash = newSplashModel(cfg.clock, cfg.splashStep)
	}

	return m
}

// Init starts the splash timer when the splash is enabled.
func (m *Model) Init() tea.Cmd {
	if m.screen == screenSplash {
		return m.splash.tick()
	}
	return nil
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		return m, nil

	case splashTickMsg:
		if m.screen != screenSplash {
			return m, nil
		}
		var cmd tea.Cmd
		m.splash, cmd = m.splash.advance()
		return m, cmd

	case splashDoneMsg:
		if m.screen != screenSplash {
			return m, nil
		}
		return m, m.showSetup()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		switch m.screen {
		case screenSplash:
			// Any key skips the splash.
			return m, m.showSetup()
		case screenSetup:
			return m.updateSetup(msg)
		case screenResults:
			return m.updateResults(msg)
		}
	}

	if m.screen == screenSetup {
		var cmd tea.Cmd
		m.setup, cmd = m.setup.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Sequence(tea.ClearScreen, tea.Quit)
}

func (m *Model) showSetup() tea.Cmd {
	m.logger.Debug("Switching screen", "from", m.screen, "to", screenSetup)
	m.screen = screenSetup
	return m.setup.focusOn(m.setup.focus)
}

func (m *Model) updateSetup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.quit()
	case "enter":
		return m, m.submit()
	}

	var cmd tea.Cmd
	m.setup, cmd = m.setup.Update(msg)
	return m, cmd
}

func (m *Model) submit() tea.Cmd {
	teams, err := m.session.SubmitSetup(m.setup.Names(), m.setup.teamCount, m.setup.playersPerTeam)
	if err != nil {
		if !roster.IsValidationError(err) {
			m.logger.Error("Unexpected setup failure", "error", err)
		}
		return m.setup.setError(err)
	}

	m.setup.err = nil
	m.teams = teams
	m.screen = screenResults
	return nil
}

func (m *Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m.quit()

	case "r":
		teams, err := m.session.Regenerate()
		if err != nil {
			m.logger.Error("Regenerate failed", "error", err)
			return m, nil
		}
		m.teams = teams

	case "b", "esc":
		in, err := m.session.BackToSetup()
		if err != nil {
			m.logger.Error("Back to setup failed", "error", err)
			return m, nil
		}
		m.teams = nil
		m.setup = newSetupModel(in)
		m.screen = screenSetup
		return m, m.setup.focusOn(focusFirstPlayer)
	}

	return m, nil
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenSplash:
		return m.splash.View(m.width, m.height)
	case screenResults:
		return m.resultsView()
	default:
		return m.setup.View()
	}
}

func (m *Model) resultsView() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("TEAMS GENERATED"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("%d Teams Created", len(m.teams))))
	b.WriteString("\n\n")
	b.WriteString(RenderTeams(m.teams, m.width))
	b.WriteString("\n\n")
	b.WriteString(RenderStats(m.teams))
	b.WriteString("\n\n")
	b.WriteString(InfoStyle.Render("r regenerate • b back to setup • q quit"))

	return b.String()
}

// Screen reports which screen is showing, for logging and tests.
func (m *Model) Screen() string {
	return m.screen.String()
}

// Teams returns the team set currently displayed.
func (m *Model) Teams() partition.TeamSet {
	return m.teams
}

// Run starts the program on the alternate screen and blocks until the user
// quits.
func Run(m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/coder/quartz"
)

const (
	splashIncrement = 20
	splashHold      = 500 * time.Millisecond
	splashBarWidth  = 40
)

var splashSteps = []string{
	"Initializing System...",
	"Loading Game Engine...",
	"Connecting to Server...",
	"Preparing Team Generator...",
	"System Ready!",
}

type splashTickMsg struct{}

type splashDoneMsg struct{}

// splashModel is the loading screen shown before the setup form. It advances
// one step per tick on its clock and holds briefly at 100%.
type splashModel struct {
	clock    quartz.Clock
	interval time.Duration
	progress int
	step     int
	done     bool
}

func newSplashModel(clock quartz.Clock, interval time.Duration) splashModel {
	return splashModel{clock: clock, interval: interval}
}

// tick arms a timer now and returns a command that waits for it.
func (s splashModel) tick() tea.Cmd {
	return s.wait(s.interval, splashTickMsg{}, "tick")
}

func (s splashModel) wait(d time.Duration, msg tea.Msg, tag string) tea.Cmd {
	timer := s.clock.NewTimer(d, "splash", tag)
	return func() tea.Msg {
		<-timer.C
		return msg
	}
}

// advance handles one tick and returns the command for the next timer.
func (s splashModel) advance() (splashModel, tea.Cmd) {
	if s.progress >= 100 {
		return s, nil
	}

	s.progress += splashIncrement
	if s.progress >= 100 {
		s.progress = 100
		return s, s.wait(splashHold, splashDoneMsg{}, "hold")
	}

	if s.step < len(splashSteps)-1 {
		s.step++
	}
	return s, s.tick()
}

func (s splashModel) text() string {
	return splashSteps[s.step]
}

func (s splashModel) View(width, height int) string {
	filled := splashBarWidth * s.progress / 100
	bar := SuccessStyle.Render(strings.Repeat("█", filled)) +
		InfoStyle.Render(strings.Repeat("░", splashBarWidth-filled))

	content := lipgloss.JoinVertical(lipgloss.Center,
		HeaderStyle.Render("TEAM GENERATOR"),
		"",
		SubtitleStyle.Render(s.text()),
		"",
		bar,
		ValueStyle.Render(fmt.Sprintf("%d%% COMPLETE", s.progress)),
	)

	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

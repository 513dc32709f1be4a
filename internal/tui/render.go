package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/teamgen/internal/partition"
)

const (
	cardWidth       = 24
	maxCardsPerRow  = 4
	cardOuterMargin = 4 // border + gap between cards
)

// RenderTeams lays the teams out as cards, as many per row as fit in width.
// A width of zero or less uses the widest layout.
func RenderTeams(teams partition.TeamSet, width int) string {
	perRow := maxCardsPerRow
	if width > 0 {
		perRow = max(1, min(maxCardsPerRow, width/(cardWidth+cardOuterMargin)))
	}

	var rows []string
	for start := 0; start < len(teams); start += perRow {
		end := min(start+perRow, len(teams))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, renderCard(i, teams[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(index int, team partition.Team) string {
	color := TeamColor(index)

	title := TitleStyle.Render(fmt.Sprintf("Team %d", index+1))
	count := InfoStyle.Render(fmt.Sprintf("%d players", len(team)))
	gap := max(1, cardWidth-2-lipgloss.Width(title)-lipgloss.Width(count))
	header := title + strings.Repeat(" ", gap) + count

	rule := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("━", cardWidth-2))

	var body strings.Builder
	if len(team) == 0 {
		body.WriteString(EmptyTeamStyle.Render("No players assigned"))
	}
	bullet := lipgloss.NewStyle().Foreground(color).Render("●")
	for i, player := range team {
		if i > 0 {
			body.WriteString("\n")
		}
		body.WriteString(bullet + " " + PlayerStyle.Render(player))
	}

	return CardStyle.BorderForeground(color).Render(header + "\n" + rule + "\n" + body.String())
}

// RenderStats renders the summary line shown under the teams.
func RenderStats(teams partition.TeamSet) string {
	stat := func(label string, value string) string {
		return ValueStyle.Render(value) + " " + InfoStyle.Render(label)
	}

	return strings.Join([]string{
		stat("Total Teams", strconv.Itoa(len(teams))),
		stat("Total Players", strconv.Itoa(teams.TotalPlayers())),
		stat("Avg Team Size", formatAverage(teams.AverageSize())),
	}, "   ")
}

// FormatText renders teams as plain text, one team per block, for files and
// non-interactive output.
func FormatText(teams partition.TeamSet) string {
	var b strings.Builder
	for i, team := range teams {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Team %d (%d)\n", i+1, len(team))
		if len(team) == 0 {
			b.WriteString("  (no players assigned)\n")
		}
		for _, player := range team {
			fmt.Fprintf(&b, "  - %s\n", player)
		}
	}
	return b.String()
}

func formatAverage(avg float64) string {
	return strconv.FormatFloat(avg, 'f', -1, 64)
}

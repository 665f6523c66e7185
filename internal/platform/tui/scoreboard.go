package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// maxRows caps the sessions listed in the summary.
const maxRows = 10

// rankSessions orders sessions by score, highest first. Ties keep the
// earlier session first.
func rankSessions(sessions []Session) []Session {
	ranked := make([]Session, len(sessions))
	copy(ranked, sessions)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// sessionTable lays out the ranked sessions with the bubbles table.
func sessionTable(ranked []Session) table.Model {
	rows := make([]table.Row, 0, min(len(ranked), maxRows))
	for i, s := range ranked {
		if i == maxRows {
			break
		}
		mark := ""
		if s.NewBest {
			mark = "new best"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.EndedAt.Format("15:04:05"),
			mark,
		})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 8},
			{Title: "Ended", Width: 10},
			{Title: "", Width: 10},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2), // Header and its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is focused, so the cursor row is drawn like the rest.
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

// RenderScoreboard renders the sessions played in this run together with
// the persisted best score. It is printed once the game has exited.
func RenderScoreboard(title string, best int, sessions []Session, width int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(centerText(title+" - THIS RUN", width)))
	b.WriteString("\n")
	b.WriteString(bestStyle.Render(centerText(fmt.Sprintf("BEST: %d", best), width)))
	b.WriteString("\n")

	if len(sessions) == 0 {
		b.WriteString(boardStyle.Render(emptyStyle.Render("No sessions finished.")))
	} else {
		b.WriteString(boardStyle.Render(sessionTable(rankSessions(sessions)).View()))
	}
	b.WriteString("\n")

	return b.String()
}

// centerText pads text on the left to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

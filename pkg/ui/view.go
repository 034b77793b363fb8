package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/slate/pkg/search"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle     = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	carryStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	fadeStyle     = lipgloss.NewStyle().Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	focusedColumnStyle = columnStyle.
				BorderForeground(lipgloss.Color("12"))
)

const (
	boxChecked   = "☑"
	boxUnchecked = "☐"
)

func (m model) View() string {
	lists := m.svc.Lists()
	if len(lists) == 0 {
		return helpStyle.Render("no lists - press q to quit")
	}

	columns := make([]string, 0, len(lists))
	var activeID string
	if l := m.svc.Active(); l != nil {
		activeID = l.ID
	}

	for n, l := range lists {
		var b strings.Builder

		title := l.Name
		if l.ID == activeID {
			title = activeStyle.Render(title + " •")
		} else {
			title = titleStyle.Render(title)
		}
		b.WriteString(title)
		b.WriteString("\n")

		items := search.Filter(l.Items, m.query)
		if len(items) == 0 {
			b.WriteString(mutedStyle.Render(" none"))
			b.WriteString("\n")
		}
		for i, it := range items {
			box := boxUnchecked
			text := it.Text
			line := fmt.Sprintf("%s %s", box, text)
			switch {
			case it.ID == m.carried:
				line = carryStyle.Render(fmt.Sprintf("%s %s", box, text))
			case m.svc.PendingDelete(it.ID):
				line = fadeStyle.Render(line)
			case it.Done:
				line = fmt.Sprintf("%s %s", boxChecked, doneStyle.Render(text))
			}
			prefix := "  "
			if n == m.listIdx && i == m.itemIdx {
				prefix = selectedStyle.Render("> ")
			}
			b.WriteString(prefix + line)
			b.WriteString("\n")
		}
		// Carry cursor one past the end targets an append.
		if m.mode == modeCarry && n == m.listIdx && m.itemIdx >= len(items) {
			b.WriteString(selectedStyle.Render("> ") + mutedStyle.Render("(end)"))
			b.WriteString("\n")
		}

		style := columnStyle
		if n == m.listIdx {
			style = focusedColumnStyle
		}
		columns = append(columns, style.Render(b.String()))
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	var footer string
	switch m.mode {
	case modeSearch, modeAdd, modePaste:
		footer = m.input.View()
	default:
		help := "h/l list  j/k task  space done  g grab  a add  p paste  / search  x archive  tab activate  q quit"
		if m.query != "" {
			help = fmt.Sprintf("filter: %q (drag off)  %s", m.query, help)
		}
		if m.status != "" {
			help = m.status + "  " + help
		}
		footer = helpStyle.Render(help)
	}

	return view + "\n" + footer
}

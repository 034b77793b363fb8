package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/slate/pkg/board"
	"tableflip.dev/slate/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))

	boxDone    = "✔"
	boxPending = "☐"
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" task")
	default:
		_, _ = c.Println(" tasks")
	}
}

// List prints the tasks of one list in display order.
func (pp *PrettyPrint) List(items ...*task.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	d := color.New(color.Faint, color.CrossedOut)

	for _, it := range items {
		if pp.ShowID {
			shortID := it.ID
			if len(shortID) > 8 {
				shortID = shortID[:8]
			}
			_, _ = y.Print(shortID)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(shortID)))
		}
		line := t
		box := boxPending
		if it.Done {
			line = d
			box = boxDone
		}
		_, _ = line.Printf("%s %s%s%s\n", box, priorityMark(it.Priority), it.Text, suffix(it))
	}
	_, _ = t.Println("")
}

// Summary renders the workspace overview table: one row per list.
func (pp *PrettyPrint) Summary(ws *board.Workspace) {
	table := uitable.New()
	table.MaxColWidth = 50
	table.AddRow("", "LIST", "TASKS", "DONE", "RESETS DAILY")
	for _, l := range ws.Lists {
		active := ""
		if l.ID == ws.ActiveID {
			active = "*"
		}
		done := 0
		for _, it := range l.Items {
			if it.Done {
				done++
			}
		}
		daily := ""
		if l.AutoReset {
			daily = "yes"
		}
		table.AddRow(active, l.Name, len(l.Items), done, daily)
	}
	fmt.Println(table)
}

func priorityMark(p task.Priority) string {
	switch p {
	case task.High:
		return color.New(color.FgHiRed).Sprint("! ")
	case task.Low:
		return color.New(color.Faint).Sprint("↓ ")
	}
	return ""
}

func suffix(it *task.Item) string {
	parts := make([]string, 0, 2)
	if it.Due != nil {
		parts = append(parts, color.New(color.FgHiYellow).Sprintf("due %s", it.Due))
	}
	for _, tag := range it.Tags {
		parts = append(parts, color.New(color.FgCyan).Sprintf("#%s", tag))
	}
	if len(parts) == 0 {
		return ""
	}
	return "  " + strings.Join(parts, " ")
}

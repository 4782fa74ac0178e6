package term

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"note/internal/domain"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

var tableHeaders = []string{"serial", "title", "tags", "modified"}

// NotesTable renders notes as an aligned table: serial as $N, tags
// space-joined, modified as a relative time against now. An empty slice
// still produces the header and separator rows.
func NotesTable(notes []domain.Note, now time.Time) string {
	rows := make([][]string, 0, len(notes))
	for _, n := range notes {
		rows = append(rows, []string{
			fmt.Sprintf("$%d", n.Serial),
			n.Title,
			strings.Join(n.Tags, " "),
			humanize.RelTime(n.Modified, now, "ago", "from now"),
		})
	}

	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range tableHeaders {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(headerStyle.Render(pad(h, widths[i])))
	}
	b.WriteString("\n")
	for i, w := range widths {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(strings.Repeat("-", w))
	}
	for _, row := range rows {
		b.WriteString("\n")
		for i, cell := range row {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(pad(cell, widths[i]))
		}
	}
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// Presenter implements ports.Presenter by printing a notes table.
type Presenter struct {
	out io.Writer
	now func() time.Time
}

// NewPresenter creates a presenter writing to out.
func NewPresenter(out io.Writer, now func() time.Time) *Presenter {
	return &Presenter{out: out, now: now}
}

// ShowNotes prints the table for the given notes.
func (p *Presenter) ShowNotes(notes []domain.Note) {
	fmt.Fprintln(p.out, NotesTable(notes, p.now()))
}

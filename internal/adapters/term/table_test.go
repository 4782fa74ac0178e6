package term

import (
	"strings"
	"testing"
	"time"

	"note/internal/domain"
)

func TestNotesTable_Empty(t *testing.T) {
	out := NotesTable(nil, time.Now())

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("empty table should be header + separator, got %d lines:\n%s", len(lines), out)
	}
	for _, h := range []string{"serial", "title", "tags", "modified"} {
		if !strings.Contains(lines[0], h) {
			t.Errorf("header line missing %q: %s", h, lines[0])
		}
	}
}

func TestNotesTable_Rows(t *testing.T) {
	now := time.Date(2024, time.March, 8, 12, 0, 0, 0, time.UTC)
	notes := []domain.Note{
		{
			Filename: "aaa",
			Title:    "groceries",
			Tags:     []string{"food", "home"},
			Modified: now.Add(-2 * time.Hour),
			Serial:   1,
		},
		{
			Filename: "bbb",
			Title:    "work log",
			Modified: now.Add(-3 * 24 * time.Hour),
			Serial:   12,
		},
	}

	out := NotesTable(notes, now)

	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	for _, want := range []string{"$1", "$12", "groceries", "work log", "food home", "2 hours ago", "3 days ago"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

package ports

import "note/internal/domain"

// Prompter asks the user a single-line question and returns the raw answer.
// An empty answer is how users abort interactive flows.
type Prompter interface {
	Ask(label string) (string, error)
}

// Presenter renders a set of notes for the user, typically right before a
// Prompter question that refers to them.
type Presenter interface {
	ShowNotes(notes []domain.Note)
}

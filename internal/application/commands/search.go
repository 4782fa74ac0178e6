package commands

import (
	"context"
	"errors"
	"fmt"

	"note/internal/application"
	"note/internal/domain"
)

// SearchResult contains the result of a search operation
type SearchResult struct {
	Matches []domain.Note
	Opened  string // filename opened in the editor, if any
}

// SearchCommand finds notes whose title or tags contain any of the
// keywords, shows them, and offers to open one in the editor.
type SearchCommand struct {
	deps     Deps
	keywords []string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(deps Deps, keywords []string) *SearchCommand {
	return &SearchCommand{deps: deps, keywords: keywords}
}

// Execute runs the search command
func (c *SearchCommand) Execute(ctx context.Context) (*SearchResult, error) {
	sess, err := c.deps.Index.Open()
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}

	matches := domain.Search(sess.Notes(), c.keywords)
	c.deps.Presenter.ShowNotes(matches)

	selection, err := application.ResolveNote(sess, c.deps.Prompter, c.deps.Log)
	if errors.Is(err, application.ErrAborted) {
		return &SearchResult{Matches: matches}, nil
	}
	if err != nil {
		return nil, err
	}

	if err := editNote(c.deps, selection.Filename, selection.Title); err != nil {
		return nil, err
	}
	return &SearchResult{Matches: matches, Opened: selection.Filename}, nil
}

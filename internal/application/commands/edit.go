package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"note/internal/application"
	"note/internal/domain"
)

// EditResult contains the result of an edit operation
type EditResult struct {
	Filename string
	Title    string
	Edited   bool
}

// EditCommand opens an existing note in the editor. The command line is
// taken as an exact title; when nothing matches, the user picks from the
// full listing instead.
type EditCommand struct {
	deps Deps
	args []string
}

// NewEditCommand creates a new EditCommand
func NewEditCommand(deps Deps, args []string) *EditCommand {
	return &EditCommand{deps: deps, args: args}
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context) (*EditResult, error) {
	sess, err := c.deps.Index.Open()
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}

	title := strings.Join(c.args, " ")
	filename := ""
	if title != "" {
		if n, ok := domain.FindByTitle(sess.Notes(), title); ok {
			filename = n.Filename
		}
	}

	if filename == "" {
		c.deps.Presenter.ShowNotes(sess.Notes())
		selection, err := application.ResolveNote(sess, c.deps.Prompter, c.deps.Log)
		if errors.Is(err, application.ErrAborted) {
			return &EditResult{}, nil
		}
		if err != nil {
			return nil, err
		}
		filename, title = selection.Filename, selection.Title
	}

	if err := editNote(c.deps, filename, title); err != nil {
		return nil, err
	}
	return &EditResult{Filename: filename, Title: title, Edited: true}, nil
}

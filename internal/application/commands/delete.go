package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"note/internal/application"
)

// BackupSuffix is appended to a deleted note's filename. Notes are never
// erased, only renamed out of the index's sight.
const BackupSuffix = ".bak"

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	Filename string
	Deleted  bool
}

// DeleteCommand lets the user pick a note, drops its index record and
// renames the backing file with the backup suffix.
type DeleteCommand struct {
	deps Deps
}

// NewDeleteCommand creates a new DeleteCommand
func NewDeleteCommand(deps Deps) *DeleteCommand {
	return &DeleteCommand{deps: deps}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	sess, err := c.deps.Index.Open()
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	c.deps.Presenter.ShowNotes(sess.Notes())

	selection, err := application.ResolveNote(sess, c.deps.Prompter, c.deps.Log)
	if errors.Is(err, application.ErrAborted) {
		c.deps.Log.Info("no note deleted")
		return &DeleteResult{}, nil
	}
	if err != nil {
		return nil, err
	}

	return c.Remove(selection.Filename)
}

// Remove drops filename from the index and renames its file. A record or
// file that is already gone is logged, not an error: deleting twice must
// not fail.
func (c *DeleteCommand) Remove(filename string) (*DeleteResult, error) {
	ws, err := c.deps.Index.OpenWrite()
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	defer ws.Discard()

	if !ws.Remove(filename) {
		c.deps.Log.Warnf("%s not present in index", filename)
	}
	if err := ws.Commit(); err != nil {
		return nil, err
	}

	path := filepath.Join(c.deps.Dir, filename)
	if err := os.Rename(path, path+BackupSuffix); err != nil {
		c.deps.Log.Warnf("could not rename %s: %v", filename, err)
		return &DeleteResult{Filename: filename, Deleted: true}, nil
	}

	c.deps.Log.Infof("renamed %s to %s%s and removed from DB", filename, filename, BackupSuffix)
	return &DeleteResult{Filename: filename, Deleted: true}, nil
}

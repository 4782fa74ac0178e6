package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"note/internal/domain"
)

// CreateResult contains the result of a create operation
type CreateResult struct {
	Filename string
	Title    string
	Edited   bool // an editor session was part of the creation
}

// CreateCommand creates a note, either quick (body straight from the
// command line, no editor) or interactive (empty file opened in the
// editor).
type CreateCommand struct {
	deps  Deps
	quick bool
	args  []string
}

// NewCreateCommand creates a new CreateCommand. args is the free-form
// remainder of the command line.
func NewCreateCommand(deps Deps, quick bool, args []string) *CreateCommand {
	return &CreateCommand{deps: deps, quick: quick, args: args}
}

// Execute runs the create command
func (c *CreateCommand) Execute(ctx context.Context) (*CreateResult, error) {
	title, body, edit, err := c.resolve()
	if err != nil {
		return nil, err
	}

	filename := newFilename()
	path := filepath.Join(c.deps.Dir, filename)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return nil, fmt.Errorf("write note: %w", err)
	}

	if edit {
		err = editNote(c.deps, filename, title)
	} else {
		err = updateRecord(c.deps, filename, title)
	}
	if err != nil {
		return nil, err
	}

	kind := "new"
	if c.quick {
		kind = "quick"
	}
	c.deps.Log.Infof("written %s note '%s'", kind, title)

	return &CreateResult{Filename: filename, Title: title, Edited: edit}, nil
}

// resolve decides on title, initial body and whether the editor runs.
//
// Quick mode: a /delimited/ title is lifted out of the content and the
// leftover becomes the body; a delimiter pair with nothing left over opens
// the editor on an empty note that already has its title; no delimiter
// means the user is asked for a title and the whole content is the body;
// no content at all falls back to an interactive note.
//
// Non-quick mode: the content, if any, is the title and the editor always
// runs on an empty file.
func (c *CreateCommand) resolve() (title, body string, edit bool, err error) {
	content := strings.Join(c.args, " ")

	if !c.quick {
		title = content
		if title == "" {
			title, err = c.askTitle()
		}
		return title, "", true, err
	}

	if found, rest := domain.SplitTitle(content); found != "" {
		if rest == "" {
			return found, "", true, nil
		}
		return found, rest, false, nil
	}

	title, err = c.askTitle()
	if err != nil {
		return "", "", false, err
	}
	if content == "" {
		return title, "", true, nil
	}
	return title, content, false, nil
}

func (c *CreateCommand) askTitle() (string, error) {
	fallback := domain.DefaultTitle(c.deps.Now())
	label := fmt.Sprintf("Provide title or press enter for timestamp (%s): ", fallback)
	answer, err := c.deps.Prompter.Ask(label)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return fallback, nil
	}
	return answer, nil
}

// newFilename generates the opaque on-disk token for a note: a UUID as 32
// hex characters, no extension.
func newFilename() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

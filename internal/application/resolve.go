package application

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"note/internal/domain"
	"note/internal/ports"
)

// PickPrompt is the question asked whenever the user has to choose a note.
const PickPrompt = "Note title, or $serial, or <Enter> to abort: "

// Selection identifies the note the user chose interactively.
type Selection struct {
	Filename string
	Title    string
}

// ResolveNote asks the user for a note until something matches. `$N`
// selects by serial, anything else is an exact title; a malformed serial or
// a miss re-asks, and empty input returns ErrAborted.
func ResolveNote(sess ports.IndexSession, prompter ports.Prompter, log logrus.FieldLogger) (Selection, error) {
	for {
		answer, err := prompter.Ask(PickPrompt)
		if err != nil {
			return Selection{}, err
		}
		if answer == "" {
			return Selection{}, ErrAborted
		}

		if strings.HasPrefix(answer, "$") {
			serial, err := strconv.Atoi(answer[1:])
			if err != nil {
				log.Warnf("invalid serial %q", answer)
				continue
			}
			if n, ok := domain.FindBySerial(sess.Notes(), serial); ok {
				return Selection{Filename: n.Filename, Title: n.Title}, nil
			}
			continue
		}

		if n, ok := domain.FindByTitle(sess.Notes(), answer); ok {
			// keep the title as typed, it is equal by construction
			return Selection{Filename: n.Filename, Title: answer}, nil
		}
	}
}

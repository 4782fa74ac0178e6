package commands

import (
	"time"

	"github.com/sirupsen/logrus"

	"note/internal/ports"
)

// Deps bundles what every note operation needs: the index, the external
// editor, the interactive console, the notes directory and a clock. It is
// built once at startup and threaded through the commands instead of being
// read from globals.
type Deps struct {
	Index     ports.NoteIndex
	Editor    ports.EditorOpener
	Prompter  ports.Prompter
	Presenter ports.Presenter
	Log       logrus.FieldLogger
	Dir       string
	Now       func() time.Time
}

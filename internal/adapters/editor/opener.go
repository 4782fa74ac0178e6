package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// Opener implements ports.EditorOpener by running a configured editor
// binary with the note path as its only argument.
type Opener struct {
	binary string
}

// NewOpener creates an opener for the given editor binary. Resolution of
// the binary (NOTE_EDITOR or the platform default) is the config layer's
// job, not this adapter's.
func NewOpener(binary string) *Opener {
	return &Opener{binary: binary}
}

// OpenFile opens a file in the editor and blocks until it exits.
func (o *Opener) OpenFile(path string) error {
	if o.binary == "" {
		return fmt.Errorf("no editor configured: set NOTE_EDITOR")
	}

	cmd := exec.Command(o.binary, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

package commands

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"note/internal/adapters/jsonindex"
	"note/internal/domain"
)

// fakeEditor records editor invocations and optionally rewrites the file,
// simulating a user edit session.
type fakeEditor struct {
	calls []string
	write string // new file content; empty means the user changed nothing
}

func (f *fakeEditor) OpenFile(path string) error {
	f.calls = append(f.calls, path)
	if f.write == "" {
		return nil
	}
	return os.WriteFile(path, []byte(f.write), 0o644)
}

type scriptedPrompter struct {
	answers []string
}

func (s *scriptedPrompter) Ask(label string) (string, error) {
	if len(s.answers) == 0 {
		return "", errors.New("prompter exhausted")
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

type recordingPresenter struct {
	shown [][]domain.Note
}

func (r *recordingPresenter) ShowNotes(notes []domain.Note) {
	r.shown = append(r.shown, notes)
}

type testEnv struct {
	deps      Deps
	dir       string
	editor    *fakeEditor
	prompter  *scriptedPrompter
	presenter *recordingPresenter
	now       *time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	log := logrus.New()
	log.SetOutput(io.Discard)

	env := &testEnv{
		dir:       dir,
		editor:    &fakeEditor{},
		prompter:  &scriptedPrompter{},
		presenter: &recordingPresenter{},
	}
	start := time.Date(2024, time.March, 8, 12, 0, 0, 0, time.UTC)
	env.now = &start

	env.deps = Deps{
		Index:     jsonindex.NewStore(dir, log),
		Editor:    env.editor,
		Prompter:  env.prompter,
		Presenter: env.presenter,
		Log:       log,
		Dir:       dir,
		Now:       func() time.Time { return *env.now },
	}
	return env
}

func (e *testEnv) advance(d time.Duration) {
	next := e.now.Add(d)
	*e.now = next
}

func (e *testEnv) record(t *testing.T, filename string) domain.Note {
	t.Helper()

	sess, err := e.deps.Index.Open()
	if err != nil {
		t.Fatalf("open index: %v", err)
	}
	n, ok := sess.Lookup(filename)
	if !ok {
		t.Fatalf("no index record for %s", filename)
	}
	return n
}

func (e *testEnv) fileContent(t *testing.T, filename string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(e.dir, filename))
	if err != nil {
		t.Fatalf("read %s: %v", filename, err)
	}
	return string(data)
}

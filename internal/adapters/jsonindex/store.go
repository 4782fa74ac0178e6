package jsonindex

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"note/internal/domain"
	"note/internal/ports"
)

// FileName is the index file kept next to the note files.
const FileName = "db.json"

// Store implements ports.NoteIndex on top of a single JSON file mapping
// filename to note record. Every session loads the whole file; a write
// session overwrites it on Commit. There is no locking: concurrent
// processes can lose updates, and that is an accepted limitation of a
// single-user tool.
type Store struct {
	path string
	log  logrus.FieldLogger
}

// NewStore creates a store for the index file inside dir.
func NewStore(dir string, log logrus.FieldLogger) *Store {
	return &Store{path: filepath.Join(dir, FileName), log: log}
}

// load reads the index file. A missing or unparseable file is not fatal:
// the tool starts over with an empty index and a warning.
func (s *Store) load() map[string]domain.Note {
	records := make(map[string]domain.Note)
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.log.Warn("missing or invalid DB file, creating new")
		return records
	}
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn("missing or invalid DB file, creating new")
		return make(map[string]domain.Note)
	}
	return records
}

// Open starts a read-only session.
func (s *Store) Open() (ports.IndexSession, error) {
	return &session{records: s.load()}, nil
}

// OpenWrite starts a session that persists on Commit.
func (s *Store) OpenWrite() (ports.IndexWriteSession, error) {
	return &writeSession{session: session{records: s.load()}, store: s}, nil
}

type session struct {
	records map[string]domain.Note
}

func (s *session) Lookup(filename string) (domain.Note, bool) {
	n, ok := s.records[filename]
	return n, ok
}

func (s *session) Notes() []domain.Note {
	notes := make([]domain.Note, 0, len(s.records))
	for _, n := range s.records {
		notes = append(notes, n)
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].Serial < notes[j].Serial
	})
	return notes
}

type writeSession struct {
	session
	store     *Store
	committed bool
}

func (w *writeSession) Put(note domain.Note) {
	w.records[note.Filename] = note
}

func (w *writeSession) Remove(filename string) bool {
	if _, ok := w.records[filename]; !ok {
		return false
	}
	delete(w.records, filename)
	return true
}

// Commit serializes the whole in-memory mapping over the index file. The
// write goes through a temp file and a rename so an interrupt mid-write
// cannot truncate the previous index.
func (w *writeSession) Commit() error {
	if w.committed {
		return nil
	}
	data, err := json.Marshal(w.records)
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	if err := writeFileAtomic(w.store.path, data, 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	w.committed = true
	w.store.log.Debug("database updated")
	return nil
}

// Discard ends the session without writing. After a Commit it does nothing.
func (w *writeSession) Discard() {}

package ports

import "note/internal/domain"

// NoteIndex opens sessions against the metadata index. Callers declare up
// front whether they intend to mutate: read sessions expose lookups only,
// write sessions additionally expose mutations and persist the whole index
// exactly once, on Commit.
type NoteIndex interface {
	Open() (IndexSession, error)
	OpenWrite() (IndexWriteSession, error)
}

// IndexSession is a read-only view of the index, fully loaded in memory.
type IndexSession interface {
	// Lookup returns the record for a filename.
	Lookup(filename string) (domain.Note, bool)

	// Notes returns every record, ordered by serial.
	Notes() []domain.Note
}

// IndexWriteSession is a mutable session. Commit overwrites the index file
// with the in-memory state; Discard ends the session without writing and is
// a no-op after a successful Commit, so it is safe to defer.
type IndexWriteSession interface {
	IndexSession

	Put(note domain.Note)

	// Remove drops a record and reports whether it was present.
	Remove(filename string) bool

	Commit() error
	Discard()
}

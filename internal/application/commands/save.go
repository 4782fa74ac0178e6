package commands

import (
	"fmt"
	"hash/adler32"
	"os"
	"path/filepath"

	"note/internal/domain"
)

// updateRecord re-derives a note's metadata and persists the index. The
// body is always re-read from disk so the index reflects on-disk content at
// update time, not whatever buffer the caller happens to hold. A note seen
// for the first time gets the next serial; a known note keeps its own.
func updateRecord(deps Deps, filename, title string) error {
	body, err := os.ReadFile(filepath.Join(deps.Dir, filename))
	if err != nil {
		return fmt.Errorf("read note: %w", err)
	}

	sess, err := deps.Index.OpenWrite()
	if err != nil {
		return fmt.Errorf("open index: %w", err)
	}
	defer sess.Discard()

	serial := 0
	if existing, ok := sess.Lookup(filename); ok {
		serial = existing.Serial
	} else {
		serial = domain.NextSerial(sess.Notes())
	}

	sess.Put(domain.Note{
		Filename: filename,
		Tags:     domain.ExtractTags(string(body)),
		Modified: deps.Now(),
		Title:    title,
		Serial:   serial,
	})
	return sess.Commit()
}

// editNote runs the external editor on a note and updates the index only
// when the file actually changed. The checksum is Adler-32: cheap detection
// of a human edit, not an integrity guarantee.
func editNote(deps Deps, filename, title string) error {
	path := filepath.Join(deps.Dir, filename)

	before, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read note: %w", err)
	}
	if err := deps.Editor.OpenFile(path); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read note: %w", err)
	}

	if adler32.Checksum(before) == adler32.Checksum(after) {
		deps.Log.Infof("no changes in %s", filename)
		return nil
	}
	return updateRecord(deps, filename, title)
}

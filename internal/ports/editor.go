package ports

// EditorOpener defines the interface for opening a note in an external
// editor. OpenFile blocks until the editor process exits.
type EditorOpener interface {
	OpenFile(path string) error
}

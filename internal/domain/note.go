package domain

import (
	"sort"
	"strings"
	"time"
)

// Note is the index record kept for one note file. The filename doubles as
// the record key and the on-disk name; it is an opaque token, not meant to
// be typed by the user. Users address notes by title or by $serial.
type Note struct {
	Filename string    `json:"filename"`
	Tags     []string  `json:"tags"`
	Modified time.Time `json:"modified"`
	Title    string    `json:"title"`
	Serial   int       `json:"serial"`
}

// ExtractTags collects every #token word from a note body: the leading #
// is stripped, the rest lowercased and deduplicated. The returned slice is
// sorted so that re-extraction of unchanged content is byte-stable.
func ExtractTags(body string) []string {
	seen := make(map[string]struct{})
	for _, token := range strings.Fields(body) {
		if !strings.HasPrefix(token, "#") {
			continue
		}
		tag := strings.ToLower(token[1:])
		if tag == "" {
			continue
		}
		seen[tag] = struct{}{}
	}
	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// NextSerial returns the serial for a brand-new note: one past the largest
// serial among the existing records, or 1 when there are none. Deleting the
// highest-serial note frees its number for the next creation; that is
// long-standing behavior and callers must not compensate for it.
func NextSerial(notes []Note) int {
	max := 0
	for _, n := range notes {
		if n.Serial > max {
			max = n.Serial
		}
	}
	return max + 1
}

// FindBySerial returns the first note whose serial matches.
func FindBySerial(notes []Note, serial int) (Note, bool) {
	for _, n := range notes {
		if n.Serial == serial {
			return n, true
		}
	}
	return Note{}, false
}

// FindByTitle returns the first note whose title is exactly equal to the
// query. No fuzzy or case-insensitive matching.
func FindByTitle(notes []Note, title string) (Note, bool) {
	for _, n := range notes {
		if n.Title == title {
			return n, true
		}
	}
	return Note{}, false
}

// Search returns every note matched by at least one keyword. A keyword
// matches a note when it is a substring of the title or of the
// space-joined tag list.
func Search(notes []Note, keywords []string) []Note {
	var found []Note
	matched := make(map[string]struct{})
	for _, n := range notes {
		blob := strings.Join(n.Tags, " ")
		for _, keyword := range keywords {
			if strings.Contains(n.Title, keyword) || strings.Contains(blob, keyword) {
				if _, dup := matched[n.Filename]; !dup {
					matched[n.Filename] = struct{}{}
					found = append(found, n)
				}
				break
			}
		}
	}
	return found
}

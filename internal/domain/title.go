package domain

import (
	"regexp"
	"strings"
	"time"
)

// A title can be embedded anywhere in quick-note content between a pair of
// slashes, e.g. `buy milk /groceries/`. The pattern is greedy on purpose:
// with several slash pairs everything between the first and the last slash
// is the title.
var titleRe = regexp.MustCompile(`/(.+)/`)

// DefaultTitleFormat is used when the user accepts the timestamp title.
const DefaultTitleFormat = "Mon, 02 Jan 2006 @15:04"

// SplitTitle extracts a /delimited/ title from quick-note content. It
// returns the title and the remaining content with the delimited part
// removed, or ("", content) when no delimiter pair is present.
func SplitTitle(content string) (title, rest string) {
	loc := titleRe.FindStringSubmatchIndex(content)
	if loc == nil {
		return "", content
	}
	title = content[loc[2]:loc[3]]
	before := strings.TrimSpace(content[:loc[0]])
	after := strings.TrimSpace(content[loc[1]:])
	rest = strings.TrimSpace(before + " " + after)
	return title, rest
}

// DefaultTitle is the title assigned when the user provides none.
func DefaultTitle(now time.Time) string {
	return now.Format(DefaultTitleFormat)
}

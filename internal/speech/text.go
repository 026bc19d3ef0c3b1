package speech

import "regexp"

// Bookmark markup is inline annotation used by voice-over tools to mark
// positions inside narrated text. It must be stripped before the text is
// sent to a synthesis endpoint.
var bookmarkRe = regexp.MustCompile(`<bookmark\s*mark\s*=\s*['"][^'"]*['"]\s*/>`)

// RemoveBookmarks strips bookmark markup from text. Only the tags are
// removed; surrounding whitespace is left untouched.
func RemoveBookmarks(text string) string {
	return bookmarkRe.ReplaceAllString(text, "")
}

// Package text provides pure string helpers shared across the Muster service.
//
// Normalize produces the canonical form of a group name used for uniqueness
// and sort comparisons. Chunk splits long payloads (mention lists, error
// dumps) into pieces that fit a fixed-size output slot.
package text

import (
	"iter"
	"regexp"
	"strings"
)

var (
	// Matches inline platform emoji/markup tokens like <:Silhouette:1176360845295489024>
	// or the animated variant <a:party:123>.
	markupToken = regexp.MustCompile(`<a?:\w+:\d+>`)

	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)
)

// Normalize strips platform markup tokens and every non-alphanumeric
// character, then lowercases. The result is the canonical form of a name:
// two names are considered equal when their normalized forms match.
func Normalize(s string) string {
	normalized := markupToken.ReplaceAllString(s, "")
	normalized = nonAlphanumeric.ReplaceAllString(normalized, "")
	return strings.ToLower(normalized)
}

// Chunk splits s into pieces no longer than maxLength-shortenBy. Each cut is
// placed at the right-most occurrence of any delimiter inside the window; when
// no delimiter is found the window boundary is used as a hard cut. The
// returned sequence is lazy and can be iterated more than once. Concatenating
// every piece yields s exactly.
func Chunk(s string, delims []string, shortenBy, maxLength int) iter.Seq[string] {
	if len(delims) == 0 {
		delims = []string{"\n"}
	}
	window := maxLength - shortenBy
	return func(yield func(string) bool) {
		rest := s
		for len(rest) > window {
			cut := -1
			for _, d := range delims {
				if i := strings.LastIndex(rest[:window], d); i > cut {
					cut = i
				}
			}
			if cut <= 0 {
				cut = window
			}
			if !yield(rest[:cut]) {
				return
			}
			rest = rest[cut:]
		}
		yield(rest)
	}
}

// ReadableList joins items into a human-readable enumeration:
// "a and b" for two items, "a, b, and c" for three or more.
func ReadableList(items []string) string {
	if len(items) > 2 {
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
	return strings.Join(items, " and ")
}

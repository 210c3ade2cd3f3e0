// Package content computes the derived fields the Draftstack backend does
// not fill in on its own: URL slugs, reading-time estimates, and trimmed
// previews of long rich-text fields.
package content

import "strings"

// Slugify converts a title into a URL slug: lowercase, hyphen-separated,
// non-alphanumerics stripped. Runs of separators collapse to a single hyphen
// and the result never starts or ends with one. Deterministic for a given
// input; may be empty if the title has no alphanumeric characters.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}

	return b.String()
}

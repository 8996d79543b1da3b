package contentmanager

import "strings"

// Slugify derives a URL-safe identifier from a display name. Lowercase,
// runs of anything outside [a-z0-9] collapse to a single dash, leading and
// trailing dashes trimmed.
// pageURLIdentifier joins the namespace slug and the page title slug into a
// single path segment, capped at the column width.
func pageURLIdentifier(nsSlug, titleSlug string) string {
	id := nsSlug + "-" + titleSlug
	if len(id) > 64 {
		id = strings.TrimRight(id[:64], "-")
	}
	return id
}

func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	dash := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		} else {
			dash = true
		}
	}
	return b.String()
}

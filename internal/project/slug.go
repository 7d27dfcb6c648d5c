package project

import "strings"

// Slugify converts a project name into its directory name.
// e.g. "My Project" -> "my-project", "foo_bar!" -> "foo-bar"
//
// Spaces, tabs and underscores become dashes, anything else outside
// [a-z0-9-] is dropped, and runs of dashes collapse to one.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	prevDash := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			prevDash = false
		case r == ' ' || r == '\t' || r == '_' || r == '-':
			if !prevDash && b.Len() > 0 {
				b.WriteRune('-')
				prevDash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

package catalog

import (
	"strings"

	"github.com/dmitrymomot/storekit/pkg/format"
)

// Slug builds a URL path segment from a product name: accents removed,
// lowercase ASCII letters and digits joined by single hyphens. A positive
// maxLen cuts the slug at the last hyphen that fits.
func Slug(name string, maxLen int) string {
	plain := strings.ToLower(format.RemoveVietnameseAccents(name))

	var b strings.Builder
	pendingSep := false
	for _, r := range plain {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}

	s := b.String()
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	s = s[:maxLen]
	if i := strings.LastIndexByte(s, '-'); i > 0 {
		s = s[:i]
	}
	return strings.TrimRight(s, "-")
}

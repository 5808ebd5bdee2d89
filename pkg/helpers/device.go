package helpers

import "regexp"

var mobileRegex = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

// IsMobile reports whether a User-Agent header belongs to a phone or tablet.
func IsMobile(userAgent string) bool {
	return mobileRegex.MatchString(userAgent)
}

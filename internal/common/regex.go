package common

import "regexp"

// DateRE matches an ISO calendar date (YYYY-MM-DD) embedded in free
// text, as used in history entry labels.
var DateRE = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// ExtractDate returns the first ISO calendar date found in text, or
// the empty string when none is present.
func ExtractDate(text string) string {
	return DateRE.FindString(text)
}

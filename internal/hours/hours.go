// Package hours evaluates free-text opening-hours strings against an
// instant. Any lookup or parse failure yields "closed" rather than an error:
// this is a presentation derivation, never a fatal condition.
package hours

import (
	"strings"
	"time"
)

// closedLiteral is matched case-sensitively per the catalog data contract.
const closedLiteral = "Closed"

// timeLayout parses 12-hour clock times with an AM/PM marker, e.g. "7:30 AM".
const timeLayout = "3:04 PM"

// IsOpenAt reports whether a venue with the given opening hours is open at
// the instant `at`, interpreted in `loc`. Hours map full English weekday
// names to strings of the form "h:mm AM - h:mm PM". Windows whose close time
// precedes their open time cross midnight ("10:00 PM - 2:00 AM"); for those,
// an early-morning instant on the same calendar day counts as inside the
// previous night's window. Both boundaries are inclusive.
func IsOpenAt(openingHours map[string]string, at time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = time.UTC
	}
	local := at.In(loc)

	raw, ok := openingHours[local.Weekday().String()]
	if !ok || raw == closedLiteral {
		return false
	}

	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		// Malformed or unsupported format (e.g. en-dash separators): fail closed.
		return false
	}

	openTOD, err := time.Parse(timeLayout, strings.TrimSpace(parts[0]))
	if err != nil {
		return false
	}
	closeTOD, err := time.Parse(timeLayout, strings.TrimSpace(parts[1]))
	if err != nil {
		return false
	}

	year, month, day := local.Date()
	open := time.Date(year, month, day, openTOD.Hour(), openTOD.Minute(), 0, 0, loc)
	close := time.Date(year, month, day, closeTOD.Hour(), closeTOD.Minute(), 0, 0, loc)

	if close.Before(open) {
		close = close.Add(24 * time.Hour)
		if local.Before(open) {
			// Early-morning instant: test it against the window that opened
			// the previous evening.
			shifted := local.Add(24 * time.Hour)
			return !shifted.Before(open) && !shifted.After(close)
		}
	}

	return !local.Before(open) && !local.After(close)
}

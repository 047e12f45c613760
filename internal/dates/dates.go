// Package dates resolves the month a brochure is built for and formats days
// of the month for display.
package dates

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Bitlatte/brochure/internal/model"
)

// Period is the calendar context a brochure is generated in.
type Period struct {
	Month string // "October"
	Date  string // "17 October, 2026"
	Year  int
}

// Resolve derives the generation period from now. The caller supplies the
// time so builds are reproducible in tests.
func Resolve(now time.Time) Period {
	return Period{
		Month: now.Month().String(),
		Date:  now.Format("02 January, 2006"),
		Year:  now.Year(),
	}
}

// Ordinal returns n followed by its English ordinal suffix: 1st, 2nd, 3rd,
// 4th, 11th, 12th, 13th, 21st. Days ending in 11, 12 or 13 always take "th".
func Ordinal(n int) string {
	return humanize.Ordinal(n)
}

// FormatDay renders a day-of-month value. Integers get an ordinal suffix and
// anything else is shown as written.
func FormatDay(day model.Scalar) string {
	if n, ok := day.Int(); ok {
		return Ordinal(n)
	}
	return day.String()
}

package engine

import (
	"strconv"
	"time"

	"github.com/sahanav/askledger/internal/common"
)

// validatePeriod rejects months outside 01-12 and years before 2000 or
// more than one year past the injected "now". Month may be empty, which
// means the period is a whole year.
func validatePeriod(month, year string, now time.Time) error {
	if month != "" {
		m, err := strconv.Atoi(month)
		if err != nil || m < 1 || m > 12 {
			return common.NewValidationError("month", month)
		}
	}

	y, err := strconv.Atoi(year)
	if err != nil || y < 2000 || y > now.Year()+1 {
		return common.NewValidationError("year", year)
	}
	return nil
}

// periodRange computes the inclusive [start, end] bounds for a month or,
// when month is empty, a whole year. The month length comes from the
// calendar, so leap years are handled for free.
func periodRange(month, year string) (time.Time, time.Time) {
	y, _ := strconv.Atoi(year)

	if month == "" {
		start := time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0).Add(-time.Second)
	}

	m, _ := strconv.Atoi(month)
	start := time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0).Add(-time.Second)
}

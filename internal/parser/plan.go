package parser

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sahanav/askledger/internal/model"
)

// Plan decides which query shape to run for a parsed query. It is total:
// every ParsedQuery maps to a shape, with Fallback covering the case
// where neither a category nor a month was detected (even if a bare year
// was).
//
// Rules in priority order:
//  1. category + month  -> CategoryAndMonth
//  2. month only        -> MonthOnly
//  3. category only     -> CategoryOnly; an explicit year spans the whole
//     year (month left empty), otherwise the current month is assumed
//  4. neither           -> Fallback
//
// Year defaults to the current year wherever it was not detected.
func Plan(parsed model.ParsedQuery, now time.Time) model.QueryShape {
	year := parsed.Year
	if year == "" {
		year = strconv.Itoa(now.Year())
	}

	switch {
	case parsed.Category != "" && parsed.Month != "":
		return model.QueryShape{
			Kind:     model.ShapeCategoryAndMonth,
			Category: parsed.Category,
			Month:    parsed.Month,
			Year:     year,
		}
	case parsed.Month != "":
		return model.QueryShape{
			Kind:  model.ShapeMonthOnly,
			Month: parsed.Month,
			Year:  year,
		}
	case parsed.Category != "":
		month := ""
		if parsed.Year == "" {
			month = fmt.Sprintf("%02d", int(now.Month()))
		}
		return model.QueryShape{
			Kind:     model.ShapeCategoryOnly,
			Category: parsed.Category,
			Month:    month,
			Year:     year,
		}
	default:
		return model.QueryShape{Kind: model.ShapeFallback}
	}
}

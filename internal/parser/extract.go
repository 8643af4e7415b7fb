// Package parser turns free-text expense questions into a structured
// ParsedQuery and plans which query shape to execute. Both functions are
// pure: the reference time is injected so relative phrases resolve
// deterministically.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sahanav/askledger/internal/model"
)

// monthEntry maps one month token to its two-digit code. Word keys are
// substring-matched; bare-number keys carry a word-boundary pattern so a
// stray "2" inside "2024" never reads as February.
type monthEntry struct {
	re   *regexp.Regexp
	key  string
	code string
}

var monthTable = buildMonthTable()

func buildMonthTable() []monthEntry {
	names := []struct {
		full   string
		abbrev string
	}{
		{"january", "jan"},
		{"february", "feb"},
		{"march", "mar"},
		{"april", "apr"},
		{"may", "may"},
		{"june", "jun"},
		{"july", "jul"},
		{"august", "aug"},
		{"september", "sep"},
		{"october", "oct"},
		{"november", "nov"},
		{"december", "dec"},
	}

	var table []monthEntry
	for i, n := range names {
		code := fmt.Sprintf("%02d", i+1)
		table = append(table, monthEntry{key: n.full, code: code})
		if n.abbrev != n.full {
			table = append(table, monthEntry{key: n.abbrev, code: code})
		}
		for _, num := range []string{strconv.Itoa(i + 1), code} {
			table = append(table, monthEntry{
				key:  num,
				code: code,
				re:   regexp.MustCompile(`\b` + num + `\b`),
			})
		}
	}
	return table
}

// monthNames resolves a single lowercase word to a month code for the
// pattern-based second pass.
var monthNames = func() map[string]string {
	m := make(map[string]string, len(monthTable))
	for _, e := range monthTable {
		if e.re == nil {
			m[e.key] = e.code
		}
	}
	return m
}()

// monthPhrasePatterns is the second detection pass, tried in order when
// the table scan finds nothing. The first pattern whose captured token
// resolves to a month name wins.
var monthPhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:in|for|during)\s+([a-z]+)`),
	regexp.MustCompile(`\b([a-z]+)\s+(?:expenses|costs|spending)\b`),
}

var yearPattern = regexp.MustCompile(`\b(20\d{2})\b`)

// relativePeriods are checked after absolute month/year detection and
// overwrite it unconditionally. This mirrors the source behavior where
// relative phrases win purely because they are evaluated last; a future
// explicit precedence rule may replace it.
var relativePeriods = []struct {
	phrases []string
	offset  int
}{
	{phrases: []string{"last month", "previous month"}, offset: -1},
	{phrases: []string{"this month", "current month"}, offset: 0},
	{phrases: []string{"next month"}, offset: 1},
}

// Extract pulls category, month, and year signals out of a raw query
// string. Matching is case-insensitive and substring-based; no signal
// leaves the corresponding field empty.
func Extract(query string, now time.Time) model.ParsedQuery {
	q := strings.ToLower(strings.TrimSpace(query))

	parsed := model.ParsedQuery{
		OriginalQuery: query,
		Category:      detectCategory(q),
		Month:         detectMonth(q),
		Year:          detectYear(q, now),
	}
	applyRelativePeriod(q, now, &parsed)
	return parsed
}

// detectCategory scans the category table in order and returns the first
// category whose first matching keyword appears in the query. Only one
// category is ever detected.
func detectCategory(q string) model.CategoryCode {
	for _, info := range model.Categories() {
		for _, keyword := range info.Keywords {
			if strings.Contains(q, keyword) {
				return info.Code
			}
		}
	}
	return ""
}

func detectMonth(q string) string {
	// First pass: direct containment scan in table order.
	for _, e := range monthTable {
		if e.re != nil {
			if e.re.MatchString(q) {
				return e.code
			}
			continue
		}
		if strings.Contains(q, e.key) {
			return e.code
		}
	}

	// Second pass: anchored phrase patterns.
	for _, pattern := range monthPhrasePatterns {
		match := pattern.FindStringSubmatch(q)
		if match == nil {
			continue
		}
		if code, ok := monthNames[match[1]]; ok {
			return code
		}
	}
	return ""
}

func detectYear(q string, now time.Time) string {
	if match := yearPattern.FindStringSubmatch(q); match != nil {
		return match[1]
	}
	if strings.Contains(q, "last year") || strings.Contains(q, "previous year") {
		return strconv.Itoa(now.Year() - 1)
	}
	if strings.Contains(q, "this year") || strings.Contains(q, "current year") {
		return strconv.Itoa(now.Year())
	}
	return ""
}

func applyRelativePeriod(q string, now time.Time, parsed *model.ParsedQuery) {
	for _, rp := range relativePeriods {
		for _, phrase := range rp.phrases {
			if !strings.Contains(q, phrase) {
				continue
			}
			// Anchor on the first of the month so offsets never
			// normalize across month ends.
			base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
			target := base.AddDate(0, rp.offset, 0)
			parsed.Month = fmt.Sprintf("%02d", int(target.Month()))
			parsed.Year = strconv.Itoa(target.Year())
			return
		}
	}
}

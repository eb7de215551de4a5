// Package dates resolves date ranges from free-form text spans.
package dates

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-parser/internal/patterns"
)

// Confidence tiers for resolved ranges
const (
	confidenceFullRange  = 0.9 // two or more distinct dates found
	confidenceSingleDate = 0.7 // exactly one date found
)

// Range is a chronologically ordered pair of canonical ISO-8601 date strings
// resolved from a text span. Either or both dates may be empty.
type Range struct {
	StartDate  string
	EndDate    string
	Confidence float64
}

// monthNumbers maps lowercase three-letter month prefixes to month numbers.
var monthNumbers = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// ResolveRange scans span for date tokens in priority order (MM/YYYY, month
// name + year, bare year), normalizes every match to a canonical YYYY-MM-DD
// string, and orders the distinct results chronologically.
//
// Two or more distinct dates yield a full range at confidence 0.9; exactly one
// yields a start date at 0.7; none yields an empty Range at 0. Tokens that
// normalize to the same calendar date count once.
func ResolveRange(span string) Range {
	found := collectDates(span)
	if len(found) == 0 {
		return Range{}
	}

	sort.Strings(found) // canonical form sorts chronologically

	if len(found) == 1 {
		return Range{StartDate: found[0], Confidence: confidenceSingleDate}
	}
	return Range{
		StartDate:  found[0],
		EndDate:    found[len(found)-1],
		Confidence: confidenceFullRange,
	}
}

// collectDates returns the distinct canonical dates in span. Higher-priority
// shapes mask their matched text so a lower-priority pass cannot re-match the
// year inside an already consumed token.
func collectDates(span string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(date string) {
		if !seen[date] {
			seen[date] = true
			out = append(out, date)
		}
	}

	// MM/YYYY and MM-YYYY
	for _, m := range patterns.DateNumeric.FindAllStringSubmatch(span, -1) {
		month, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[2])
		add(canonical(year, month))
	}
	span = patterns.DateNumeric.ReplaceAllString(span, " ")

	// MonthName YYYY
	for _, m := range patterns.DateMonthName.FindAllStringSubmatch(span, -1) {
		month := monthNumbers[strings.ToLower(m[1])]
		year, _ := strconv.Atoi(m[2])
		add(canonical(year, month))
	}
	span = patterns.DateMonthName.ReplaceAllString(span, " ")

	// Bare YYYY
	for _, m := range patterns.DateYear.FindAllStringSubmatch(span, -1) {
		year, _ := strconv.Atoi(m[1])
		add(canonical(year, 1))
	}

	return out
}

// canonical renders a year/month pair as an ISO-8601 date anchored to the
// first day of the month.
func canonical(year, month int) string {
	return fmt.Sprintf("%04d-%02d-01", year, month)
}

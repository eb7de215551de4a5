// Package extract implements the heuristic extractors that turn raw resume
// text into structured entities. Each extractor scans the document
// independently as an explicit finite-state machine and reports a confidence
// scalar alongside its output. Extractors never fail: malformed or empty input
// yields empty output at confidence 0.
package extract

import "strings"

// Section extraction confidence weights. These are hand-tuned heuristics
// carried over unchanged; their relative ordering is load-bearing.
const (
	weightSectionFound = 0.3 // one-time bonus for locating the section heading
	weightEntryField   = 0.2 // position/company or degree/institution assigned
	weightDescription  = 0.1 // descriptive text attached to an entry
)

// sectionState names the states of the section-scanning machines.
type sectionState int

const (
	stateOutsideSection sectionState = iota
	stateInSection
	stateBuildingEntry
)

// minDescriptionLen is the shortest line treated as descriptive text rather
// than a stray token.
const minDescriptionLen = 10

// splitLines splits text into trimmed lines. Line order is preserved; blank
// lines stay in place so callers can decide how to treat them.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}

// clamp01 bounds a confidence value to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// meanOf returns the arithmetic mean of vs, or 0 for an empty slice.
func meanOf(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

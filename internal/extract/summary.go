package extract

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/patterns"
)

// Summary collects the free-text block under the summary/objective/profile
// heading, stopping at the next recognized section heading. Returns "" when
// the document has no summary section.
func Summary(text string) string {
	var lines []string
	state := stateOutsideSection

	for _, line := range splitLines(text) {
		switch state {
		case stateOutsideSection:
			if patterns.IsHeading(patterns.SummaryHeading, line) {
				state = stateInSection
			}

		case stateInSection, stateBuildingEntry:
			if line == "" {
				continue
			}
			if patterns.IsAnyHeading(line) && !patterns.IsHeading(patterns.SummaryHeading, line) {
				state = stateOutsideSection
				continue
			}
			lines = append(lines, line)
			state = stateBuildingEntry
		}
	}

	return strings.Join(lines, " ")
}

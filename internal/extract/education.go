package extract

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/dates"
	"github.com/jonathan/resume-parser/internal/patterns"
	"github.com/jonathan/resume-parser/internal/types"
)

// EducationResult is the output of the education extractor.
type EducationResult struct {
	Entries    []types.EducationEntry
	Confidence float64
}

// educationBuilder accumulates one education entry. Lines that are neither a
// degree nor an institution go to the buffer only, feeding date resolution
// without becoming a visible field.
type educationBuilder struct {
	entry      types.EducationEntry
	buffer     []string
	confidence float64
}

func (b *educationBuilder) started() bool {
	return b != nil && (b.entry.Institution != "" || b.entry.Degree != "")
}

// flush resolves the graduation date from the accumulated text. Only the
// earliest date of the resolved range is kept; a graduation is a single point
// in time.
func (b *educationBuilder) flush(out *EducationResult, confidences *[]float64) {
	resolved := dates.ResolveRange(strings.Join(b.buffer, " "))
	b.entry.GraduationDate = resolved.StartDate
	b.confidence = clamp01(b.confidence + resolved.Confidence)

	out.Entries = append(out.Entries, b.entry)
	*confidences = append(*confidences, b.confidence)
}

// Education segments the education section into entries, keyed on degree
// lines. A degree line starts a new entry (flushing the prior one); an
// institution-indicator line fills the institution when not yet assigned; any
// other non-empty line feeds date resolution only.
func Education(text string) EducationResult {
	var result EducationResult
	var entryConfidences []float64
	var builder *educationBuilder

	headingFound := false
	state := stateOutsideSection

	for _, line := range splitLines(text) {
		switch state {
		case stateOutsideSection:
			if patterns.IsHeading(patterns.EducationHeading, line) {
				headingFound = true
				state = stateInSection
			}

		case stateInSection, stateBuildingEntry:
			if line == "" {
				continue
			}
			if patterns.IsAnyHeading(line) && !patterns.IsHeading(patterns.EducationHeading, line) {
				if builder.started() {
					builder.flush(&result, &entryConfidences)
				}
				builder = nil
				state = stateOutsideSection
				continue
			}

			switch {
			case patterns.Degree.MatchString(line):
				if builder.started() {
					builder.flush(&result, &entryConfidences)
				}
				builder = &educationBuilder{}
				builder.entry.Degree = line
				builder.confidence += weightEntryField

			case patterns.Institution.MatchString(line):
				if builder == nil {
					builder = &educationBuilder{}
				}
				if builder.entry.Institution == "" {
					builder.entry.Institution = line
					builder.confidence += weightEntryField
				}
			}

			if builder != nil {
				builder.buffer = append(builder.buffer, line)
			}
			state = stateBuildingEntry
		}
	}

	if builder.started() {
		builder.flush(&result, &entryConfidences)
	}

	if !headingFound {
		return EducationResult{}
	}
	result.Confidence = clamp01(weightSectionFound + meanOf(entryConfidences))
	return result
}

package extract

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/dates"
	"github.com/jonathan/resume-parser/internal/patterns"
	"github.com/jonathan/resume-parser/internal/types"
)

// ExperienceResult is the output of the work-experience extractor.
type ExperienceResult struct {
	Entries    []types.ExperienceEntry
	Confidence float64
}

// experienceBuilder accumulates one job entry while the machine is in
// stateBuildingEntry. The buffer collects every consumed line for date
// resolution at flush time.
type experienceBuilder struct {
	entry          types.ExperienceEntry
	buffer         []string
	confidence     float64
	hasDescription bool
}

func (b *experienceBuilder) started() bool {
	return b != nil && (b.entry.Company != "" || b.entry.Position != "")
}

// flush resolves the entry's date range over its accumulated text and appends
// it to out. The entry confidence is clamped to 1 after the date contribution.
func (b *experienceBuilder) flush(out *ExperienceResult, confidences *[]float64) {
	resolved := dates.ResolveRange(strings.Join(b.buffer, " "))
	b.entry.StartDate = resolved.StartDate
	b.entry.EndDate = resolved.EndDate
	b.confidence = clamp01(b.confidence + resolved.Confidence)

	out.Entries = append(out.Entries, b.entry)
	*confidences = append(*confidences, b.confidence)
}

// Experience segments the work-experience section into discrete job entries.
//
// The machine starts outside the section and transitions on the experience
// heading. Inside the section, a job-title line starts a new entry (flushing
// any entry in progress), the first non-title line fills the company, and
// longer lines accumulate as the description. A different section heading or
// the end of the document flushes the entry under construction. When the
// heading is never found the result is empty at confidence 0.
func Experience(text string) ExperienceResult {
	var result ExperienceResult
	var entryConfidences []float64
	var builder *experienceBuilder

	headingFound := false
	state := stateOutsideSection

	for _, line := range splitLines(text) {
		switch state {
		case stateOutsideSection:
			if patterns.IsHeading(patterns.ExperienceHeading, line) {
				headingFound = true
				state = stateInSection
			}

		case stateInSection, stateBuildingEntry:
			if line == "" {
				continue
			}
			if patterns.IsAnyHeading(line) && !patterns.IsHeading(patterns.ExperienceHeading, line) {
				if builder.started() {
					builder.flush(&result, &entryConfidences)
				}
				builder = nil
				state = stateOutsideSection
				continue
			}

			switch {
			case patterns.JobTitle.MatchString(line):
				if builder.started() {
					builder.flush(&result, &entryConfidences)
				}
				builder = &experienceBuilder{}
				builder.entry.Position = line
				builder.confidence += weightEntryField

			case builder == nil || builder.entry.Company == "":
				if builder == nil {
					builder = &experienceBuilder{}
				}
				builder.entry.Company = line
				builder.confidence += weightEntryField

			case len(line) > minDescriptionLen:
				if builder.entry.Description == "" {
					builder.entry.Description = line
				} else {
					builder.entry.Description += " " + line
				}
				if !builder.hasDescription {
					builder.confidence += weightDescription
					builder.hasDescription = true
				}
			}

			builder.buffer = append(builder.buffer, line)
			state = stateBuildingEntry
		}
	}

	if builder.started() {
		builder.flush(&result, &entryConfidences)
	}

	if !headingFound {
		return ExperienceResult{}
	}
	result.Confidence = clamp01(weightSectionFound + meanOf(entryConfidences))
	return result
}

// Package parsing provides the resume parse orchestrator: it runs every
// extractor over the same raw text, validates the extracted entities, and
// assembles the aggregate ParsedResume with an overall confidence score.
package parsing

import (
	"time"

	"github.com/jonathan/resume-parser/internal/extract"
	"github.com/jonathan/resume-parser/internal/types"
	"github.com/jonathan/resume-parser/internal/validation"
)

// categoryCount is the number of confidence categories averaged into the
// overall score: personal info, experience, education, skills.
const categoryCount = 4

// Parser converts raw resume text into a ParsedResume. The zero value is not
// usable; construct with NewParser. A Parser holds no mutable state and is
// safe for concurrent use across goroutines.
type Parser struct {
	currentYear int
}

// Option customizes a Parser.
type Option func(*Parser)

// WithCurrentYear fixes the year used to bound graduation-date plausibility.
// Tests use this to stay reproducible; production callers take the default.
func WithCurrentYear(year int) Option {
	return func(p *Parser) { p.currentYear = year }
}

// NewParser constructs a Parser. By default the graduation-year bound tracks
// the wall clock.
func NewParser(opts ...Option) *Parser {
	p := &Parser{currentYear: time.Now().Year()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse structures rawText into a ParsedResume. It is total: any input,
// including the empty string or binary garbage decoded as text, produces a
// result rather than an error. Low confidence is the signal that the output
// should not be trusted. The input is copied into the result and not retained
// otherwise.
func (p *Parser) Parse(rawText string) *types.ParsedResume {
	personal := extract.PersonalInfo(rawText)
	experience := extract.Experience(rawText)
	education := extract.Education(rawText)
	skills := extract.Skills(rawText)
	summary := extract.Summary(rawText)

	resume := &types.ParsedResume{
		PersonalInfo: personal,
		Experience:   experience.Entries,
		Education:    education.Entries,
		Skills:       skills.Entries,
		Summary:      summary,
		RawText:      rawText,
	}
	if resume.Experience == nil {
		resume.Experience = []types.ExperienceEntry{}
	}
	if resume.Education == nil {
		resume.Education = []types.EducationEntry{}
	}
	if resume.Skills == nil {
		resume.Skills = []types.SkillEntry{}
	}

	for i := range resume.Experience {
		resume.Experience[i].Validation = validation.ExperienceEntry(resume.Experience[i])
	}
	for i := range resume.Education {
		resume.Education[i].Validation = validation.EducationEntry(resume.Education[i], p.currentYear)
	}

	resume.Validation = p.aggregate(resume, personal.Confidence, experience.Confidence, education.Confidence, skills.Confidence)
	return resume
}

// aggregate builds the per-category validation bundle and the overall
// confidence. Categories with zero entries contribute their extractor's
// confidence, which is 0 by construction; sparse resumes are penalized rather
// than excused.
func (p *Parser) aggregate(resume *types.ParsedResume, personalConf, experienceConf, educationConf, skillsConf float64) types.ResumeValidation {
	bundle := types.ResumeValidation{
		PersonalInfo: validation.PersonalInfo(resume.PersonalInfo),
		Experience:   combineEntryResults(experienceValidations(resume.Experience)),
		Education:    combineEntryResults(educationValidations(resume.Education)),
		Skills:       validation.Skills(resume.Skills),
	}

	bundle.OverallConfidence = (personalConf + experienceConf + educationConf + skillsConf) / categoryCount

	issues := []string{}
	issues = append(issues, bundle.PersonalInfo.Issues...)
	issues = append(issues, bundle.Experience.Issues...)
	issues = append(issues, bundle.Education.Issues...)
	issues = append(issues, bundle.Skills.Issues...)
	bundle.Issues = issues

	return bundle
}

func experienceValidations(entries []types.ExperienceEntry) []types.ValidationResult {
	out := make([]types.ValidationResult, len(entries))
	for i, entry := range entries {
		out[i] = entry.Validation
	}
	return out
}

func educationValidations(entries []types.EducationEntry) []types.ValidationResult {
	out := make([]types.ValidationResult, len(entries))
	for i, entry := range entries {
		out[i] = entry.Validation
	}
	return out
}

// combineEntryResults folds per-entry validation results into one
// category-level result: valid when every entry is valid, confidence is the
// mean entry confidence, issues concatenate in entry order.
func combineEntryResults(results []types.ValidationResult) types.ValidationResult {
	combined := types.ValidationResult{IsValid: true, Issues: []string{}}
	if len(results) == 0 {
		return combined
	}

	sum := 0.0
	for _, r := range results {
		sum += r.Confidence
		combined.Issues = append(combined.Issues, r.Issues...)
		if !r.IsValid {
			combined.IsValid = false
		}
	}
	combined.Confidence = sum / float64(len(results))
	return combined
}

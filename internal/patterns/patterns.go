// Package patterns holds the static regular expressions and keyword taxonomies
// used by the extractors. It is pure data: swapping a table never requires
// touching extractor logic. All tables are compiled once at startup and never
// mutated afterwards.
package patterns

import "regexp"

// Contact field patterns
var (
	// Email matches a syntactically plausible email address anywhere in text.
	Email = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// Phone matches NANP-style phone numbers with an optional country code.
	Phone = regexp.MustCompile(`(\+?1[-.\s]?)?(\(\d{3}\)|\d{3})[-.\s]?\d{3}[-.\s]?\d{4}`)

	// Address matches a street-address-through-ZIP shape, anchored on the postal code.
	Address = regexp.MustCompile(`\d+\s+[A-Za-z0-9.,'\- ]+,\s*[A-Za-z .]+,?\s*[A-Z]{2}\s+\d{5}(-\d{4})?`)
)

// Strict variants used by the validators. Extraction is permissive, validation
// anchors the whole field.
var (
	StrictEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	StrictPhone = regexp.MustCompile(`^(\+?1[-.\s]?)?(\(\d{3}\)|\d{3})[-.\s]?\d{3}[-.\s]?\d{4}$`)
	StrictName  = regexp.MustCompile(`^[A-Za-z]+(\s[A-Za-z]+)*$`)
)

// Section heading patterns. A heading is a short line matching one of these;
// see IsHeading for the length guard.
var (
	ExperienceHeading = regexp.MustCompile(`(?i)\b(experience|employment|career)\b`)
	EducationHeading  = regexp.MustCompile(`(?i)\b(education|academic|qualifications)\b`)
	SkillsHeading     = regexp.MustCompile(`(?i)\b(skills|competencies|technologies)\b`)
	SummaryHeading    = regexp.MustCompile(`(?i)\b(summary|objective|profile)\b`)
)

// Entry detection patterns
var (
	// JobTitle matches lines that look like a position title.
	JobTitle = regexp.MustCompile(`(?i)\b(engineer|developer|programmer|manager|director|analyst|consultant|designer|architect|specialist|coordinator|administrator|scientist|intern)\b`)

	// Degree matches lines that name an academic degree.
	Degree = regexp.MustCompile(`(?i)\b(bachelor|master|phd|ph\.d|doctorate|associate|mba|b\.?s\.?c?|b\.?a\.?|m\.?s\.?c?|m\.?a\.?|diploma)\b`)

	// Institution matches lines that name an educational institution.
	Institution = regexp.MustCompile(`(?i)\b(university|college|institute|school|academy)\b`)
)

// Date token patterns, in priority order: numeric month/year, month-name/year,
// bare year. Years are restricted to 1900-2099 to avoid false positives on
// bare numbers.
var (
	DateNumeric   = regexp.MustCompile(`\b(0?[1-9]|1[0-2])[/-]((?:19|20)\d{2})\b`)
	DateMonthName = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s+((?:19|20)\d{2})\b`)
	DateYear      = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)
)

// PurelyNumeric matches tokens consisting only of digits.
var PurelyNumeric = regexp.MustCompile(`^\d+$`)

// maxHeadingLen bounds how long a line may be and still count as a section
// heading. Prose lines that happen to contain a heading keyword stay content.
const maxHeadingLen = 50

// IsHeading reports whether line is short enough to be a section heading and
// matches the given heading pattern.
func IsHeading(pattern *regexp.Regexp, line string) bool {
	return len(line) <= maxHeadingLen && pattern.MatchString(line)
}

// IsAnyHeading reports whether line is a heading of any recognized section.
func IsAnyHeading(line string) bool {
	for _, p := range []*regexp.Regexp{ExperienceHeading, EducationHeading, SkillsHeading, SummaryHeading} {
		if IsHeading(p, line) {
			return true
		}
	}
	return false
}

// SkillCategory maps a taxonomy category to its keyword list. Categories are
// held in an ordered slice so that matching is deterministic.
type SkillCategory struct {
	Name     string
	Keywords []string
}

// SkillTaxonomy is the fixed skill-category taxonomy, in match-priority order.
var SkillTaxonomy = []SkillCategory{
	{
		Name: "Programming Languages",
		Keywords: []string{
			"javascript", "typescript", "python", "java", "c++", "c#", "go",
			"golang", "ruby", "php", "swift", "kotlin", "rust", "scala", "perl",
		},
	},
	{
		Name: "Web Technologies",
		Keywords: []string{
			"react", "angular", "vue", "node.js", "nodejs", "express", "django",
			"flask", "rails", "html", "css", "graphql", "rest",
		},
	},
	{
		Name: "Databases",
		Keywords: []string{
			"postgresql", "postgres", "mysql", "mongodb", "redis", "sqlite",
			"oracle", "cassandra", "elasticsearch", "dynamodb", "sql",
		},
	},
	{
		Name: "Cloud & DevOps",
		Keywords: []string{
			"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
			"jenkins", "ansible", "linux", "git", "ci/cd",
		},
	},
	{
		Name: "Soft Skills",
		Keywords: []string{
			"leadership", "communication", "teamwork", "mentoring",
			"collaboration", "problem solving", "project management", "agile",
			"scrum",
		},
	},
}

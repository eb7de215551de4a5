// Package validation checks the structural plausibility of extracted resume
// entities. Validators are pure functions: they never panic, never perform
// I/O, and surface problems as issue strings with a confidence ratio. Absent
// optional fields are excluded from the ratio, never treated as failures.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/resume-parser/internal/patterns"
	"github.com/jonathan/resume-parser/internal/types"
)

// Field length floors for plausible entities.
const (
	minNameLen        = 4
	minCompanyLen     = 2
	minPositionLen    = 3
	minInstitutionLen = 2
	minDegreeLen      = 3
	minDescriptionLen = 10
)

// Graduation years are plausible within [minGraduationYear, currentYear+graduationYearSlack].
const (
	minGraduationYear   = 1900
	graduationYearSlack = 10
)

// maxPlausibleSkills is the count above which a skills list is suspicious.
const maxPlausibleSkills = 50

// checker tallies pass/fail criteria into a ValidationResult.
type checker struct {
	checked int
	passed  float64
	issues  []string
}

// check records a full pass or a failure with the given issue.
func (c *checker) check(ok bool, issue string) {
	c.checked++
	if ok {
		c.passed++
	} else {
		c.issues = append(c.issues, issue)
	}
}

// partial records a criterion that passed partially (for example a date range
// with only one endpoint present).
func (c *checker) partial(score float64) {
	c.checked++
	c.passed += score
}

func (c *checker) result() types.ValidationResult {
	result := types.ValidationResult{
		IsValid: len(c.issues) == 0,
		Issues:  c.issues,
	}
	if result.Issues == nil {
		result.Issues = []string{}
	}
	if c.checked > 0 {
		result.Confidence = c.passed / float64(c.checked)
	}
	return result
}

// PersonalInfo validates the contact fields that were extracted. Fields that
// were not found are skipped.
func PersonalInfo(info types.PersonalInfo) types.ValidationResult {
	var c checker

	if info.Name != "" {
		ok := len(info.Name) >= minNameLen && patterns.StrictName.MatchString(info.Name)
		c.check(ok, "Name appears invalid")
	}
	if info.Email != "" {
		c.check(patterns.StrictEmail.MatchString(info.Email), "Email address appears invalid")
	}
	if info.Phone != "" {
		c.check(patterns.StrictPhone.MatchString(info.Phone), "Phone number appears invalid")
	}

	return c.result()
}

// ExperienceEntry validates one extracted job entry.
func ExperienceEntry(entry types.ExperienceEntry) types.ValidationResult {
	var c checker

	c.check(plausibleField(entry.Company, minCompanyLen), "Company name appears invalid")
	c.check(plausibleField(entry.Position, minPositionLen), "Position title appears invalid")
	c.check(len(entry.Description) >= minDescriptionLen, "Description is missing or too short")

	switch {
	case entry.StartDate != "" && entry.EndDate != "":
		c.check(entry.StartDate <= entry.EndDate, "Start date is after end date")
	case entry.StartDate != "" || entry.EndDate != "":
		c.partial(0.5)
	}

	return c.result()
}

// EducationEntry validates one extracted education entry.
func EducationEntry(entry types.EducationEntry, currentYear int) types.ValidationResult {
	var c checker

	c.check(plausibleField(entry.Institution, minInstitutionLen), "Institution name appears invalid")
	c.check(len(strings.TrimSpace(entry.Degree)) >= minDegreeLen, "Degree appears invalid")

	if entry.GraduationDate != "" {
		year := dateYear(entry.GraduationDate)
		ok := year >= minGraduationYear && year <= currentYear+graduationYearSlack
		c.check(ok, fmt.Sprintf("Graduation date %s is implausible", entry.GraduationDate))
	}

	return c.result()
}

// Skills validates the extracted skill collection as a whole. The confidence
// is the mean of the average per-skill confidence and the categorization rate.
func Skills(entries []types.SkillEntry) types.ValidationResult {
	var issues []string

	if len(entries) == 0 {
		return types.ValidationResult{Issues: []string{"No skills detected"}}
	}
	if len(entries) > maxPlausibleSkills {
		issues = append(issues, "Unusually high number of skills detected")
	}

	confidenceSum := 0.0
	categorized := 0
	for _, entry := range entries {
		confidenceSum += entry.Confidence
		if entry.Category != "" {
			categorized++
		}
	}
	if categorized == 0 {
		issues = append(issues, "No skills could be categorized")
	}

	if issues == nil {
		issues = []string{}
	}
	avgConfidence := confidenceSum / float64(len(entries))
	categorizationRate := float64(categorized) / float64(len(entries))

	return types.ValidationResult{
		IsValid:    len(issues) == 0,
		Confidence: (avgConfidence + categorizationRate) / 2,
		Issues:     issues,
	}
}

// plausibleField reports whether a free-text field meets the length floor and
// is not purely numeric.
func plausibleField(value string, minLen int) bool {
	value = strings.TrimSpace(value)
	return len(value) >= minLen && !patterns.PurelyNumeric.MatchString(value)
}

// dateYear extracts the leading year of an ISO-8601 date string, or 0.
func dateYear(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}

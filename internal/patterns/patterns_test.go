package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailPattern(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Plain address", "contact jane@x.com today", "jane@x.com"},
		{"Dotted local part", "first.last@example.co.uk", "first.last@example.co.uk"},
		{"Plus tag", "dev+resume@example.com", "dev+resume@example.com"},
		{"No address", "no email here", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Email.FindString(tt.input))
		})
	}
}

func TestPhonePattern(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		matches bool
	}{
		{"Dashed", "555-123-4567", true},
		{"Parenthesized area code", "(555) 123-4567", true},
		{"Country code", "+1 555 123 4567", true},
		{"Dotted", "555.123.4567", true},
		{"Too short", "123-4567", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, Phone.MatchString(tt.input))
		})
	}
}

func TestIsHeading(t *testing.T) {
	assert.True(t, IsHeading(ExperienceHeading, "Work Experience"))
	assert.True(t, IsHeading(ExperienceHeading, "EMPLOYMENT HISTORY"))
	assert.True(t, IsHeading(EducationHeading, "Education"))
	assert.True(t, IsHeading(SkillsHeading, "Technical Skills"))
	assert.True(t, IsHeading(SummaryHeading, "Professional Summary"))

	// Prose containing a keyword is not a heading once it exceeds the length guard.
	assert.False(t, IsHeading(ExperienceHeading, "Over ten years of experience building distributed systems at scale"))
	assert.False(t, IsHeading(ExperienceHeading, "Built scalable systems"))
}

func TestIsAnyHeading(t *testing.T) {
	assert.True(t, IsAnyHeading("Skills"))
	assert.True(t, IsAnyHeading("Education"))
	assert.False(t, IsAnyHeading("Acme Corp"))
}

func TestDatePatterns(t *testing.T) {
	assert.True(t, DateNumeric.MatchString("03/2018"))
	assert.True(t, DateNumeric.MatchString("3-2018"))
	assert.False(t, DateNumeric.MatchString("13/2018"))
	assert.True(t, DateMonthName.MatchString("January 2020"))
	assert.True(t, DateMonthName.MatchString("Sept 2019"))
	assert.True(t, DateYear.MatchString("2018"))
	assert.False(t, DateYear.MatchString("1776"))
	assert.False(t, DateYear.MatchString("2150"))
}

func TestSkillTaxonomyShape(t *testing.T) {
	seen := map[string]bool{}
	for _, cat := range SkillTaxonomy {
		assert.NotEmpty(t, cat.Name)
		assert.NotEmpty(t, cat.Keywords)
		assert.False(t, seen[cat.Name], "duplicate category %s", cat.Name)
		seen[cat.Name] = true
	}
}

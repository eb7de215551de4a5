// Package types provides type definitions for structured data used throughout the resume-parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PersonalInfo represents contact information extracted from the document head
type PersonalInfo struct {
	Name       string  `json:"name,omitempty"`
	Email      string  `json:"email,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	Address    string  `json:"address,omitempty"`
	Confidence float64 `json:"confidence"`
}

// ExperienceEntry represents a single job entry extracted from the work experience section
type ExperienceEntry struct {
	Company     string           `json:"company"`
	Position    string           `json:"position"`
	Description string           `json:"description"`
	StartDate   string           `json:"startDate,omitempty"` // ISO-8601 date string
	EndDate     string           `json:"endDate,omitempty"`   // ISO-8601 date string
	Validation  ValidationResult `json:"validation"`
}

// EducationEntry represents a single entry extracted from the education section
type EducationEntry struct {
	Institution    string           `json:"institution"`
	Degree         string           `json:"degree"`
	GraduationDate string           `json:"graduationDate,omitempty"` // ISO-8601 date string
	Validation     ValidationResult `json:"validation"`
}

// SkillEntry represents one skill token, optionally categorized against the taxonomy
type SkillEntry struct {
	Name       string  `json:"name"`
	Category   string  `json:"category,omitempty"`
	Confidence float64 `json:"confidence"`
}

// ValidationResult reports the structural plausibility of an extracted entity.
// Issues is empty when no problems were found.
type ValidationResult struct {
	IsValid    bool     `json:"isValid"`
	Confidence float64  `json:"confidence"`
	Issues     []string `json:"issues"`
}

// ResumeValidation bundles the per-category validation results for one parse.
// Issues concatenates every entity-level issue list in category order:
// personalInfo, experience (entry order), education (entry order), skills.
type ResumeValidation struct {
	PersonalInfo      ValidationResult `json:"personalInfo"`
	Experience        ValidationResult `json:"experience"`
	Education         ValidationResult `json:"education"`
	Skills            ValidationResult `json:"skills"`
	OverallConfidence float64          `json:"overallConfidence"`
	Issues            []string         `json:"issues"`
}

// ParsedResume is the aggregate result of parsing one resume document.
// It is produced exactly once per parse call and is not mutated afterwards.
type ParsedResume struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []EducationEntry  `json:"education"`
	Skills       []SkillEntry      `json:"skills"`
	Summary      string            `json:"summary,omitempty"`
	RawText      string            `json:"rawText"`
	Validation   ResumeValidation  `json:"validation"`
}

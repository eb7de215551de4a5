package extract

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-parser/internal/patterns"
	"github.com/jonathan/resume-parser/internal/types"
)

// Skill confidence tiers. In-section category matches outrank uncategorized
// tokens; there is no out-of-section tier because the extractor only consumes
// lines inside a detected skills section.
const (
	weightCategorizedSkill   = 0.8
	weightUncategorizedSkill = 0.4
)

// minSkillTokenLen discards splinters left over from delimiter splitting.
const minSkillTokenLen = 2

// skillDelimiters separate skill tokens within a line.
const skillDelimiters = ",;|·•"

// SkillsResult is the output of the skills extractor.
type SkillsResult struct {
	Entries    []types.SkillEntry
	Confidence float64
}

// Skills tokenizes the skills section and categorizes each token against the
// taxonomy. Tokens are deduplicated by normalized name, first seen wins, and
// order of first appearance is preserved. The overall confidence is the mean
// of the kept entries' confidences, 0 when none were kept.
func Skills(text string) SkillsResult {
	var result SkillsResult
	seen := make(map[string]bool)

	state := stateOutsideSection

	for _, line := range splitLines(text) {
		switch state {
		case stateOutsideSection:
			if patterns.IsHeading(patterns.SkillsHeading, line) {
				state = stateInSection
			}

		case stateInSection, stateBuildingEntry:
			if line == "" {
				continue
			}
			if patterns.IsAnyHeading(line) && !patterns.IsHeading(patterns.SkillsHeading, line) {
				state = stateOutsideSection
				continue
			}
			state = stateBuildingEntry

			for _, token := range splitSkillTokens(line) {
				normalized := strings.ToLower(token)
				if len(normalized) < minSkillTokenLen || patterns.PurelyNumeric.MatchString(normalized) {
					continue
				}
				if seen[normalized] {
					continue
				}
				seen[normalized] = true

				entry := types.SkillEntry{Name: token, Confidence: weightUncategorizedSkill}
				if category, ok := categorize(normalized); ok {
					entry.Category = category
					entry.Confidence = weightCategorizedSkill
				}
				result.Entries = append(result.Entries, entry)
			}
		}
	}

	var confidences []float64
	for _, entry := range result.Entries {
		confidences = append(confidences, entry.Confidence)
	}
	result.Confidence = meanOf(confidences)
	return result
}

// splitSkillTokens splits a line on the delimiter characters and trims the
// resulting tokens, dropping leading bullet markers.
func splitSkillTokens(line string) []string {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return strings.ContainsRune(skillDelimiters, r)
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.Trim(field, " \t-*")
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// categorize matches a normalized token against every taxonomy category using
// word-boundary matching and returns the first category that matches. All
// in-section matches share one confidence tier, so taxonomy order decides
// ties deterministically.
func categorize(token string) (string, bool) {
	for _, category := range patterns.SkillTaxonomy {
		for _, keyword := range category.Keywords {
			if keywordInToken(token, keyword) {
				return category.Name, true
			}
		}
	}
	return "", false
}

// keywordInToken reports whether keyword occurs in token bounded by
// non-alphanumeric characters. Boundaries are checked manually because
// keywords such as "c++" and "node.js" defeat \b matching.
func keywordInToken(token, keyword string) bool {
	for from := 0; ; {
		idx := strings.Index(token[from:], keyword)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(keyword)

		beforeOK := start == 0 || !isWordChar(rune(token[start-1]))
		afterOK := end == len(token) || !isWordChar(rune(token[end]))
		if beforeOK && afterOK {
			return true
		}
		from = start + 1
	}
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

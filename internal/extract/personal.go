package extract

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-parser/internal/patterns"
	"github.com/jonathan/resume-parser/internal/types"
)

// Name candidate confidence by word count. Three-word names are the most
// common pattern on resumes and score highest.
const (
	weightTwoWordName   = 0.8
	weightThreeWordName = 0.9
	weightFourWordName  = 0.7
)

// Per-field weights folded into the aggregate contact confidence.
const (
	weightEmailFound   = 1.0
	weightPhoneFound   = 0.9
	weightAddressFound = 0.8
)

// nameCandidateLines bounds how deep into the document name detection looks.
// Resumes conventionally lead with the candidate's name.
const nameCandidateLines = 3

// PersonalInfo extracts name, email, phone and address from raw resume text.
// The name is taken from the first three non-blank lines; the remaining fields
// come from single whole-document regex passes, first match each. The
// aggregate confidence is the mean of the per-field weights of the fields
// actually found, or 0 when nothing was found.
func PersonalInfo(text string) types.PersonalInfo {
	info := types.PersonalInfo{}

	name, nameConfidence := detectName(text)
	info.Name = name
	info.Email = patterns.Email.FindString(text)
	info.Phone = strings.TrimSpace(patterns.Phone.FindString(text))
	info.Address = patterns.Address.FindString(text)

	var weights []float64
	if info.Name != "" {
		weights = append(weights, nameConfidence)
	}
	if info.Email != "" {
		weights = append(weights, weightEmailFound)
	}
	if info.Phone != "" {
		weights = append(weights, weightPhoneFound)
	}
	if info.Address != "" {
		weights = append(weights, weightAddressFound)
	}
	info.Confidence = meanOf(weights)

	return info
}

// detectName scans the first nameCandidateLines non-blank lines for the
// highest-confidence name candidate. Ties keep the earlier line.
func detectName(text string) (string, float64) {
	bestName := ""
	bestConfidence := 0.0

	seen := 0
	for _, line := range splitLines(text) {
		if line == "" {
			continue
		}
		seen++
		if seen > nameCandidateLines {
			break
		}
		if confidence, ok := nameConfidence(line); ok && confidence > bestConfidence {
			bestName = line
			bestConfidence = confidence
		}
	}

	return bestName, bestConfidence
}

// nameConfidence reports whether line qualifies as a name candidate: 2-4
// whitespace-separated words, each starting with an uppercase letter and
// containing no digits.
func nameConfidence(line string) (float64, bool) {
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return 0, false
	}
	for _, word := range words {
		runes := []rune(word)
		if !unicode.IsUpper(runes[0]) {
			return 0, false
		}
		for _, r := range runes {
			if unicode.IsDigit(r) {
				return 0, false
			}
		}
	}

	switch len(words) {
	case 2:
		return weightTwoWordName, true
	case 3:
		return weightThreeWordName, true
	default:
		return weightFourWordName, true
	}
}

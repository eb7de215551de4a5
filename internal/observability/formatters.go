// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintParsedResume outputs a human-readable summary of a parse result.
func (p *Printer) PrintParsedResume(resume *types.ParsedResume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:    %s\n", orDash(resume.PersonalInfo.Name)))
	sb.WriteString(fmt.Sprintf("Email:   %s\n", orDash(resume.PersonalInfo.Email)))
	sb.WriteString(fmt.Sprintf("Phone:   %s\n", orDash(resume.PersonalInfo.Phone)))
	sb.WriteString("\n")

	if len(resume.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(resume.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := resume.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s — %s", orDash(entry.Position), orDash(entry.Company)))
			if entry.StartDate != "" {
				sb.WriteString(fmt.Sprintf(" (%s", entry.StartDate))
				if entry.EndDate != "" {
					sb.WriteString(fmt.Sprintf(" → %s", entry.EndDate))
				}
				sb.WriteString(")")
			}
			sb.WriteString("\n")
		}
		if len(resume.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
		}
	}

	if len(resume.Education) > 0 {
		sb.WriteString("Education:\n")
		for _, entry := range resume.Education {
			sb.WriteString(fmt.Sprintf("  • %s — %s\n", orDash(entry.Degree), orDash(entry.Institution)))
		}
	}

	if len(resume.Skills) > 0 {
		names := make([]string, 0, min(len(resume.Skills), maxItemsToShow))
		for i := 0; i < len(resume.Skills) && i < maxItemsToShow; i++ {
			names = append(names, resume.Skills[i].Name)
		}
		sb.WriteString(fmt.Sprintf("Skills:  %s", strings.Join(names, ", ")))
		if len(resume.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf(" (+%d more)", len(resume.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\nOverall confidence: %.2f\n", resume.Validation.OverallConfidence))
	if len(resume.Validation.Issues) > 0 {
		sb.WriteString(fmt.Sprintf("Issues: %d\n", len(resume.Validation.Issues)))
	}

	p.printBox("Parsed Resume", strings.TrimRight(sb.String(), "\n"))
}

// PrintIssues outputs the merged validation issue list.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintIssues(issues []string) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintln(p.out, "Validation issues:")
	for _, issue := range issues {
		fmt.Fprintf(p.out, "  - %s\n", issue)
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs the contact fields and located sections of a parsed
// resume.
func (p *Printer) PrintResume(resume *types.ResumeData) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", resume.Name))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", resume.Email))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", resume.Phone))
	sb.WriteString(fmt.Sprintf("LinkedIn: %s\n", resume.LinkedIn))
	sb.WriteString(fmt.Sprintf("GitHub:   %s\n", resume.GitHub))

	var found []string
	for _, name := range types.SectionNames {
		if resume.Sections[name] != "" {
			found = append(found, name)
		}
	}
	if len(found) > 0 {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("Sections: %s", strings.Join(found, ", ")))
	}

	p.printBox("PARSED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillProfile outputs the extracted skills grouped by category.
func (p *Printer) PrintSkillProfile(profile *types.SkillProfile) {
	if profile == nil || profile.Empty() {
		p.printBox("SKILL PROFILE", "No skills found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total skills: %d\n", profile.Count()))
	if profile.ExperienceYears > 0 {
		sb.WriteString(fmt.Sprintf("Experience:   %d years\n", profile.ExperienceYears))
	}
	sb.WriteString("\n")

	for _, category := range types.Categories {
		list := profile.Categorized[category]
		if len(list) == 0 {
			continue
		}
		shown := list
		if len(shown) > maxItemsToShow {
			shown = shown[:maxItemsToShow]
		}
		sb.WriteString(fmt.Sprintf("%s:\n", category))
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(shown, ", ")))
		if len(list) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(list)-maxItemsToShow))
		}
	}

	p.printBox("SKILL PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendation outputs the top job matches with their scores.
func (p *Printer) PrintRecommendation(rec *types.Recommendation) {
	if rec == nil {
		return
	}
	if len(rec.TopMatches) == 0 {
		p.printBox("JOB RECOMMENDATIONS", rec.Message)
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n\n", rec.Message))

	for i, match := range rec.TopMatches {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, match.Title))
		sb.WriteString(fmt.Sprintf("    Score: %.1f%%  (required match: %.1f%%)\n",
			match.FinalScore, match.RequiredSkillMatch))
		if len(match.MatchingSkills) > 0 {
			skills := strings.Join(match.MatchingSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Have:  %s\n", skills))
		}
		if len(match.MissingSkills) > 0 {
			skills := strings.Join(match.MissingSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Learn: %s\n", skills))
		}
		if i < len(rec.TopMatches)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("JOB RECOMMENDATIONS", sb.String())
}

// PrintAdvice outputs the career advice summary.
func (p *Printer) PrintAdvice(advice *types.CareerAdvice) {
	if advice == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target role: %s (%.1f%% match)\n", advice.TargetRole, advice.MatchScore))
	sb.WriteString(fmt.Sprintf("Coverage:    %.1f%% of required skills\n", advice.GapAnalysis.SkillCoveragePercentage))

	if len(advice.LearningPath.PrioritySkills) > 0 {
		sb.WriteString("\nPriority skills:\n")
		for _, plan := range advice.LearningPath.PrioritySkills {
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", plan.Skill, plan.EstimatedTime))
		}
	}

	if len(advice.GeneralAdvice) > 0 {
		sb.WriteString("\nGeneral advice:\n")
		count := min(len(advice.GeneralAdvice), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", advice.GeneralAdvice[i]))
		}
	}

	p.printBox("CAREER ADVICE", strings.TrimSuffix(sb.String(), "\n"))
}

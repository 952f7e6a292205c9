package chat

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

const helpText = `I can help you with:

- **"What skills do I have?"** - View your extracted skills
- **"Show job recommendations"** - See matching job roles
- **"How to improve [skill]?"** - Get learning advice for specific skills
- **"What skills am I missing?"** - See skill gaps for your target jobs
- **"Show my resume summary"** - View parsed resume information
- **"How many years of experience do I have?"** - View your experience

Ask me anything about your resume, skills, or career development!`

// skillsSummary lists the extracted skills grouped by category.
func skillsSummary(ctx *Context, _ string) string {
	if ctx.Profile == nil || ctx.Profile.Empty() {
		return "No skills have been extracted from your resume yet."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "I found %d skills in your resume", ctx.Profile.Count())
	if ctx.Profile.ExperienceYears > 0 {
		fmt.Fprintf(&sb, " with %d years of experience", ctx.Profile.ExperienceYears)
	}
	sb.WriteString(". Your skills include:\n\n")

	for _, category := range types.Categories {
		list := ctx.Profile.Categorized[category]
		if len(list) == 0 {
			continue
		}
		if len(list) > 5 {
			list = list[:5]
		}
		fmt.Fprintf(&sb, "**%s**: %s\n", category, strings.Join(list, ", "))
	}
	return sb.String()
}

// jobSummary lists the current top job recommendations with their scores.
func jobSummary(ctx *Context, _ string) string {
	if len(ctx.Matches) == 0 {
		return "No job matches have been generated yet. Upload a resume first!"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Based on your skills, here are your top %d job recommendations:\n\n", len(ctx.Matches))
	for i, job := range ctx.Matches {
		fmt.Fprintf(&sb, "%d. **%s** - %.1f%% match\n", i+1, job.Title, job.FinalScore)
		fmt.Fprintf(&sb, "   Matching skills: %d\n", len(job.MatchingSkills))
		fmt.Fprintf(&sb, "   Skills to learn: %d\n\n", len(job.MissingSkills))
	}
	return sb.String()
}

// improvementAdvice gives skill-specific advice when the query names a
// detected skill, otherwise a general plan toward the top match.
func improvementAdvice(ctx *Context, query string) string {
	if len(ctx.Matches) == 0 {
		return "Upload a resume and get job matches first to receive personalized advice."
	}

	top := ctx.Matches[0]
	if ctx.Profile != nil {
		for _, skill := range ctx.Profile.Skills {
			if strings.Contains(query, strings.ToLower(skill)) {
				return skillAdvice(top, skill)
			}
		}
	}

	if len(top.MissingSkills) == 0 {
		return fmt.Sprintf("Great! You already have all the required skills for %s. Consider advancing to more senior roles or specializing further.", top.Title)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "To improve your chances for **%s**, focus on these skills:\n\n", top.Title)
	missing := top.MissingSkills
	if len(missing) > 5 {
		missing = missing[:5]
	}
	for i, skill := range missing {
		fmt.Fprintf(&sb, "%d. **%s** - Critical skill\n", i+1, skill)
	}
	sb.WriteString("\n**Action Plan:**\n")
	sb.WriteString("- Focus on learning 1-2 skills at a time\n")
	sb.WriteString("- Build projects to demonstrate proficiency\n")
	sb.WriteString("- Update your resume and portfolio regularly\n")
	sb.WriteString("- Network with professionals in your target field\n")
	return sb.String()
}

func skillAdvice(top types.JobMatch, skill string) string {
	for _, missing := range top.MissingSkills {
		if strings.EqualFold(missing, skill) {
			return fmt.Sprintf(`To improve your **%[1]s** skills:

1. **Learn the Basics**: Start with online tutorials and courses
2. **Build Projects**: Create 2-3 projects using %[1]s
3. **Practice Daily**: Spend 30-60 minutes daily practicing %[1]s
4. **Get Feedback**: Post projects on GitHub and ask for code reviews
5. **Apply Knowledge**: Freelance projects, open source, portfolio updates

Estimated timeline: 2-3 months for beginner to intermediate level`, skill)
		}
	}
	return fmt.Sprintf("You already have %s! Consider advancing to intermediate or expert level.", skill)
}

// missingSkills reports the skill gap toward the top recommendation.
func missingSkills(ctx *Context, _ string) string {
	if len(ctx.Matches) == 0 {
		return "No job matches available. Upload a resume first."
	}

	top := ctx.Matches[0]
	if len(top.MissingSkills) == 0 {
		return fmt.Sprintf("You have all required skills for %s!", top.Title)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Missing skills for **%s**:\n", top.Title)
	for _, skill := range top.MissingSkills {
		fmt.Fprintf(&sb, "- %s\n", skill)
	}
	return sb.String()
}

// resumeSummary reports the parsed contact fields and available sections.
func resumeSummary(ctx *Context, _ string) string {
	if ctx.Resume == nil {
		return "No resume data available."
	}

	var sb strings.Builder
	sb.WriteString("**Resume Summary**\n\n")
	fmt.Fprintf(&sb, "Name: %s\n", ctx.Resume.Name)
	fmt.Fprintf(&sb, "Email: %s\n", ctx.Resume.Email)
	fmt.Fprintf(&sb, "Phone: %s\n\n", ctx.Resume.Phone)

	for _, name := range types.SectionNames {
		if ctx.Resume.Sections[name] != "" {
			fmt.Fprintf(&sb, "**%s**: Available\n", titleWord(name))
		}
	}
	return sb.String()
}

// experienceSummary reports the detected years of experience.
func experienceSummary(ctx *Context, _ string) string {
	if ctx.Profile != nil && ctx.Profile.ExperienceYears > 0 {
		return fmt.Sprintf("Based on your resume, you have approximately %d years of experience.", ctx.Profile.ExperienceYears)
	}
	return "I couldn't determine your years of experience from the resume."
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

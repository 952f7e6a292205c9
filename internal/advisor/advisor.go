// Package advisor derives learning plans and career advice from matching
// results. Pure derivation: list slicing and static lookup tables only.
package advisor

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

const (
	maxPrioritySkills   = 5
	maxNiceToHaveSkills = 3
	gapAnalysisJobs     = 3
)

// learningResources maps skill keys to beginner-level resources. Partial
// key matches are accepted so "machine learning" also covers variants.
var learningResources = map[string][]string{
	"python":           {"Codecademy Python", "Python.org Tutorial", "Automate the Boring Stuff"},
	"javascript":       {"freeCodeCamp", "JavaScript.info", "Eloquent JavaScript"},
	"react":            {"React Official Docs", "React for Beginners"},
	"machine learning": {"Coursera ML by Andrew Ng", "Fast.ai", "Kaggle Learn"},
	"docker":           {"Docker Official Tutorial", "Docker for Beginners"},
	"aws":              {"AWS Free Tier", "AWS Cloud Practitioner"},
	"sql":              {"SQLBolt", "Mode SQL Tutorial", "PostgreSQL Exercises"},
	"kubernetes":       {"Kubernetes Basics", "Kubernetes the Hard Way"},
	"linux":            {"Linux Journey", "The Linux Command Line"},
}

// learningStrategy is the fixed general strategy attached to every path.
var learningStrategy = []string{
	"Focus on one skill at a time to avoid overwhelm",
	"Build real projects to solidify understanding",
	"Contribute to open source projects",
	"Network with professionals in the field",
	"Document your learning journey on GitHub/LinkedIn",
	"Apply for relevant internships or junior positions",
	"Keep your resume and portfolio updated",
}

// Resources returns beginner learning resources for a skill: direct table
// hit, partial key match, or a generic fallback list.
func Resources(skill string) []string {
	key := strings.ToLower(skill)
	if res, ok := learningResources[key]; ok {
		return res
	}
	for _, tableKey := range sortedKeys() {
		if strings.Contains(key, tableKey) || strings.Contains(tableKey, key) {
			return learningResources[tableKey]
		}
	}
	return []string{
		fmt.Sprintf("Search for %q tutorials on YouTube", skill),
		fmt.Sprintf("Read the official %s documentation", skill),
		"Practice on Codecademy or freeCodeCamp",
		"Build personal projects",
		"Join relevant online communities",
	}
}

func sortedKeys() []string {
	keys := make([]string, 0, len(learningResources))
	for k := range learningResources {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LearningPathFor buckets the target role's missing skills by priority
// (required vs nice-to-have) and attaches resources and a timeline.
func LearningPathFor(target *types.JobMatch) types.LearningPath {
	path := types.LearningPath{
		TargetRole:       target.Title,
		LearningStrategy: learningStrategy,
	}

	required := lowerSet(target.RequiredSkills)
	niceToHave := lowerSet(target.NiceToHave)

	var priorityMissing, optionalMissing []string
	for _, skill := range target.MissingSkills {
		switch {
		case required[strings.ToLower(skill)]:
			priorityMissing = append(priorityMissing, skill)
		case niceToHave[strings.ToLower(skill)]:
			optionalMissing = append(optionalMissing, skill)
		}
	}

	for _, skill := range truncate(priorityMissing, maxPrioritySkills) {
		resources := Resources(skill)
		path.PrioritySkills = append(path.PrioritySkills, types.SkillPlan{
			Skill:         skill,
			Priority:      "high",
			Resources:     truncate(resources, 3),
			EstimatedTime: "2-3 months",
			ActionItems: []string{
				fmt.Sprintf("Complete an online course or tutorial for %s", skill),
				fmt.Sprintf("Build 2-3 projects using %s", skill),
				fmt.Sprintf("Add %s projects to your portfolio", skill),
				"Practice daily for consistent improvement",
			},
		})
	}

	for _, skill := range truncate(optionalMissing, maxNiceToHaveSkills) {
		path.NiceToHaveSkills = append(path.NiceToHaveSkills, types.SkillPlan{
			Skill:         skill,
			Priority:      "medium",
			Resources:     truncate(Resources(skill), 2),
			EstimatedTime: "1-2 months",
		})
	}

	totalMonths := len(priorityMissing)*2 + len(optionalMissing)
	path.EstimatedTimeline = fmt.Sprintf("%d months with focused learning", totalMonths)

	return path
}

// AnalyzeGaps aggregates skill gaps across the given target roles,
// frequency-sorting missing required skills by how many roles demand them.
func AnalyzeGaps(resumeSkills []string, targetJobs []types.JobMatch) types.GapAnalysis {
	resumeLower := lowerSet(resumeSkills)

	allRequired := make(map[string]string) // lowercase -> display form
	allNice := make(map[string]string)
	frequency := make(map[string]int)

	for i := range targetJobs {
		for _, skill := range targetJobs[i].RequiredSkills {
			lower := strings.ToLower(skill)
			allRequired[lower] = skill
			frequency[lower]++
		}
		for _, skill := range targetJobs[i].NiceToHave {
			allNice[strings.ToLower(skill)] = skill
		}
	}

	var missingRequired, missingNice []string
	covered := 0
	for lower, display := range allRequired {
		if resumeLower[lower] {
			covered++
		} else {
			missingRequired = append(missingRequired, display)
		}
	}
	for lower, display := range allNice {
		if !resumeLower[lower] {
			missingNice = append(missingNice, display)
		}
	}

	// Frequency desc, then name asc for a stable ordering.
	sort.Slice(missingRequired, func(i, j int) bool {
		fi := frequency[strings.ToLower(missingRequired[i])]
		fj := frequency[strings.ToLower(missingRequired[j])]
		if fi != fj {
			return fi > fj
		}
		return missingRequired[i] < missingRequired[j]
	})
	sort.Strings(missingNice)

	coverage := 0.0
	if len(allRequired) > 0 {
		coverage = round2(float64(covered) / float64(len(allRequired)) * 100)
	}

	return types.GapAnalysis{
		CurrentSkillsCount:      len(resumeSkills),
		MissingRequiredCount:    len(missingRequired),
		MissingNiceToHaveCount:  len(missingNice),
		TopMissingSkills:        truncate(missingRequired, 10),
		SkillCoveragePercentage: coverage,
		Recommendations:         priorityRecommendations(truncate(missingRequired, maxPrioritySkills)),
	}
}

func priorityRecommendations(missingSkills []string) []types.SkillRecommendation {
	recommendations := make([]types.SkillRecommendation, 0, len(missingSkills))
	for i, skill := range missingSkills {
		importance := "High"
		if i < 2 {
			importance = "Critical"
		}
		recommendations = append(recommendations, types.SkillRecommendation{
			Skill:         skill,
			PriorityRank:  i + 1,
			Importance:    importance,
			Resources:     Resources(skill),
			EstimatedTime: "2-3 months",
			NextSteps: []string{
				fmt.Sprintf("Enroll in a %s course", skill),
				fmt.Sprintf("Build a project using %s", skill),
				fmt.Sprintf("Practice %s daily", skill),
				"Add it to your LinkedIn skills",
			},
		})
	}
	return recommendations
}

// Advice generates the full career-advice bundle for one analysis: target
// role, learning path, gap analysis over the top matches, experience-tiered
// general advice, and the fixed 30/60/90-day action plan.
func Advice(profile *types.SkillProfile, matches []types.JobMatch) (*types.CareerAdvice, error) {
	if len(matches) == 0 {
		return nil, fmt.Errorf("no job matches available")
	}

	top := matches[0]
	gapTargets := matches
	if len(gapTargets) > gapAnalysisJobs {
		gapTargets = gapTargets[:gapAnalysisJobs]
	}
	gaps := AnalyzeGaps(profile.Skills, gapTargets)

	return &types.CareerAdvice{
		TargetRole:    top.Title,
		MatchScore:    top.FinalScore,
		LearningPath:  LearningPathFor(&top),
		GapAnalysis:   gaps,
		GeneralAdvice: generalAdvice(profile.ExperienceYears, gaps),
		ActionPlan:    actionPlan(),
	}, nil
}

// generalAdvice is tiered on years of experience, with an extra nudge when
// required-skill coverage is under half.
func generalAdvice(experienceYears int, gaps types.GapAnalysis) []string {
	var advice []string
	switch {
	case experienceYears < 2:
		advice = []string{
			"Focus on building a strong foundation in core technologies",
			"Contribute to open source projects to gain experience",
			"Build a portfolio of personal projects",
			"Network with professionals through LinkedIn and tech communities",
		}
	case experienceYears < 5:
		advice = []string{
			"Specialize in 2-3 key technologies",
			"Take on leadership roles in projects",
			"Consider relevant certifications",
			"Mentor junior developers",
		}
	default:
		advice = []string{
			"Consider senior or lead positions",
			"Develop system design and architecture skills",
			"Build your personal brand through blogging or speaking",
			"Explore management or technical leadership paths",
		}
	}

	if gaps.SkillCoveragePercentage < 50 {
		advice = append(advice, "Prioritize learning the most in-demand skills in your target field")
	}
	return advice
}

func actionPlan() types.ActionPlan {
	return types.ActionPlan{
		Days30: []string{
			"Complete an online course for your #1 priority skill",
			"Start building your first project using new skills",
			"Update your LinkedIn profile and resume",
			"Join relevant online communities and forums",
		},
		Days60: []string{
			"Complete 2-3 projects showcasing your skills",
			"Start applying to relevant positions",
			"Network with professionals in your target field",
			"Continue learning your priority skills",
		},
		Days90: []string{
			"Have a strong portfolio of projects",
			"Be actively interviewing for positions",
			"Have improved significantly in 2-3 key skills",
			"Continue expanding your network and learning",
		},
	}
}

func lowerSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[strings.ToLower(s)] = true
	}
	return set
}

func truncate(list []string, max int) []string {
	if len(list) > max {
		return list[:max]
	}
	return list
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-insight/internal/types"
)

func TestResources_DirectHit(t *testing.T) {
	res := Resources("Python")

	assert.Contains(t, res, "Codecademy Python")
}

func TestResources_PartialMatch(t *testing.T) {
	// "machine learning engineering" is not a table key but contains one.
	res := Resources("machine learning engineering")

	assert.Contains(t, res, "Fast.ai")
}

func TestResources_GenericFallback(t *testing.T) {
	res := Resources("Terraform")

	require.Len(t, res, 5)
	assert.Contains(t, res[0], "Terraform")
	assert.Contains(t, res[1], "Terraform")
}

func TestLearningPathFor_Buckets(t *testing.T) {
	target := &types.JobMatch{
		JobRole: types.JobRole{
			Title:          "Backend Developer",
			RequiredSkills: []string{"Python", "SQL", "Docker"},
			NiceToHave:     []string{"Kubernetes", "AWS"},
		},
		MissingSkills: []string{"Docker"},
	}

	path := LearningPathFor(target)

	assert.Equal(t, "Backend Developer", path.TargetRole)
	require.Len(t, path.PrioritySkills, 1)
	assert.Equal(t, "Docker", path.PrioritySkills[0].Skill)
	assert.Equal(t, "high", path.PrioritySkills[0].Priority)
	assert.NotEmpty(t, path.PrioritySkills[0].Resources)
	assert.Empty(t, path.NiceToHaveSkills)
	assert.Equal(t, "2 months with focused learning", path.EstimatedTimeline)
	assert.NotEmpty(t, path.LearningStrategy)
}

func TestLearningPathFor_Caps(t *testing.T) {
	target := &types.JobMatch{
		JobRole: types.JobRole{
			Title:          "Platform Engineer",
			RequiredSkills: []string{"A", "B", "C", "D", "E", "F", "G"},
			NiceToHave:     []string{"N1", "N2", "N3", "N4"},
		},
		MissingSkills: []string{"A", "B", "C", "D", "E", "F", "G", "N1", "N2", "N3", "N4"},
	}

	path := LearningPathFor(target)

	assert.Len(t, path.PrioritySkills, 5)
	assert.Len(t, path.NiceToHaveSkills, 3)
	// Timeline counts all missing skills, not just the displayed ones.
	assert.Equal(t, "18 months with focused learning", path.EstimatedTimeline)
}

func TestAnalyzeGaps_FrequencySorted(t *testing.T) {
	jobs := []types.JobMatch{
		{JobRole: types.JobRole{RequiredSkills: []string{"Docker", "Kubernetes"}}},
		{JobRole: types.JobRole{RequiredSkills: []string{"Docker", "Python"}}},
		{JobRole: types.JobRole{RequiredSkills: []string{"Docker", "Python", "SQL"}}},
	}

	gaps := AnalyzeGaps([]string{"SQL"}, jobs)

	// Docker is demanded by all three roles, Python by two.
	require.GreaterOrEqual(t, len(gaps.TopMissingSkills), 3)
	assert.Equal(t, "Docker", gaps.TopMissingSkills[0])
	assert.Equal(t, "Python", gaps.TopMissingSkills[1])
	assert.Equal(t, "Kubernetes", gaps.TopMissingSkills[2])

	// 1 of 4 distinct required skills covered.
	assert.Equal(t, 25.0, gaps.SkillCoveragePercentage)
	assert.Equal(t, 3, gaps.MissingRequiredCount)
}

func TestAnalyzeGaps_Recommendations(t *testing.T) {
	jobs := []types.JobMatch{
		{JobRole: types.JobRole{RequiredSkills: []string{"Docker", "Python", "SQL"}}},
	}

	gaps := AnalyzeGaps(nil, jobs)
	require.Len(t, gaps.Recommendations, 3)

	assert.Equal(t, 1, gaps.Recommendations[0].PriorityRank)
	assert.Equal(t, "Critical", gaps.Recommendations[0].Importance)
	assert.Equal(t, "Critical", gaps.Recommendations[1].Importance)
	assert.Equal(t, "High", gaps.Recommendations[2].Importance)
}

func TestAnalyzeGaps_NoTargets(t *testing.T) {
	gaps := AnalyzeGaps([]string{"Python"}, nil)

	assert.Equal(t, 0.0, gaps.SkillCoveragePercentage)
	assert.Empty(t, gaps.TopMissingSkills)
}

func TestAdvice_NoMatches(t *testing.T) {
	_, err := Advice(&types.SkillProfile{}, nil)

	assert.Error(t, err)
}

func TestAdvice_FullBundle(t *testing.T) {
	profile := &types.SkillProfile{
		Skills:          []string{"Python", "SQL"},
		ExperienceYears: 3,
	}
	matches := []types.JobMatch{
		{
			JobRole: types.JobRole{
				Title:          "Backend Developer",
				RequiredSkills: []string{"Python", "SQL", "Docker"},
			},
			FinalScore:    84.0,
			MissingSkills: []string{"Docker"},
		},
	}

	advice, err := Advice(profile, matches)
	require.NoError(t, err)

	assert.Equal(t, "Backend Developer", advice.TargetRole)
	assert.Equal(t, 84.0, advice.MatchScore)
	assert.Len(t, advice.LearningPath.PrioritySkills, 1)
	assert.NotEmpty(t, advice.GeneralAdvice)
	assert.NotEmpty(t, advice.ActionPlan.Days30)
	assert.NotEmpty(t, advice.ActionPlan.Days60)
	assert.NotEmpty(t, advice.ActionPlan.Days90)
}

func TestGeneralAdvice_ExperienceTiers(t *testing.T) {
	fullCoverage := types.GapAnalysis{SkillCoveragePercentage: 90}

	junior := generalAdvice(1, fullCoverage)
	mid := generalAdvice(3, fullCoverage)
	senior := generalAdvice(8, fullCoverage)

	assert.Contains(t, junior[0], "foundation")
	assert.Contains(t, mid[0], "Specialize")
	assert.Contains(t, senior[0], "senior or lead")
}

func TestGeneralAdvice_LowCoverageNudge(t *testing.T) {
	lowCoverage := types.GapAnalysis{SkillCoveragePercentage: 30}

	advice := generalAdvice(3, lowCoverage)

	assert.Contains(t, advice[len(advice)-1], "in-demand skills")
}

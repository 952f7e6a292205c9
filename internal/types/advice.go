package types

// SkillPlan describes how to acquire one missing skill.
type SkillPlan struct {
	Skill         string   `json:"skill"`
	Priority      string   `json:"priority"` // "high" or "medium"
	Resources     []string `json:"resources"`
	EstimatedTime string   `json:"estimated_time"`
	ActionItems   []string `json:"action_items,omitempty"`
}

// LearningPath is a structured plan for closing the skill gap toward one
// target role.
type LearningPath struct {
	TargetRole        string      `json:"target_role"`
	PrioritySkills    []SkillPlan `json:"priority_skills"`
	NiceToHaveSkills  []SkillPlan `json:"nice_to_have_skills"`
	EstimatedTimeline string      `json:"estimated_timeline"`
	LearningStrategy  []string    `json:"learning_strategy"`
}

// SkillRecommendation is one prioritized skill-development suggestion from
// the gap analysis.
type SkillRecommendation struct {
	Skill         string   `json:"skill"`
	PriorityRank  int      `json:"priority_rank"`
	Importance    string   `json:"importance"` // "Critical" or "High"
	Resources     []string `json:"learning_resources"`
	EstimatedTime string   `json:"estimated_time"`
	NextSteps     []string `json:"next_steps"`
}

// GapAnalysis aggregates skill gaps across several target roles.
type GapAnalysis struct {
	CurrentSkillsCount      int                   `json:"current_skills_count"`
	MissingRequiredCount    int                   `json:"missing_required_count"`
	MissingNiceToHaveCount  int                   `json:"missing_nice_to_have_count"`
	TopMissingSkills        []string              `json:"top_missing_skills"`
	SkillCoveragePercentage float64               `json:"skill_coverage_percentage"`
	Recommendations         []SkillRecommendation `json:"recommendations"`
}

// ActionPlan is the fixed 30/60/90-day template attached to every advice
// result.
type ActionPlan struct {
	Days30 []string `json:"30_days"`
	Days60 []string `json:"60_days"`
	Days90 []string `json:"90_days"`
}

// CareerAdvice is the advisor's full output for one analysis.
type CareerAdvice struct {
	TargetRole    string       `json:"target_role"`
	MatchScore    float64      `json:"match_score"`
	LearningPath  LearningPath `json:"learning_path"`
	GapAnalysis   GapAnalysis  `json:"skill_gap_analysis"`
	GeneralAdvice []string     `json:"general_advice"`
	ActionPlan    ActionPlan   `json:"action_plan"`
}

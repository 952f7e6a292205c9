package types

// PortalLink is one external job-portal search link. Links are opened by
// the end user's browser; no network calls are made here.
type PortalLink struct {
	URL   string `json:"url"`
	Color string `json:"color"`
	Emoji string `json:"emoji"`
}

// JobMatch is a JobRole annotated with computed overlap and similarity
// scores for one SkillProfile. Created fresh on every matching call and
// never persisted.
type JobMatch struct {
	JobRole

	// MatchingSkills are résumé skills present in required or nice_to_have.
	MatchingSkills []string `json:"matching_skills"`
	// MissingSkills are required skills (only) absent from the résumé.
	MissingSkills []string `json:"missing_skills"`

	// RequiredSkillMatch and OverallSkillMatch are percentages in [0,100],
	// rounded to two decimals.
	RequiredSkillMatch float64 `json:"required_skill_match"`
	OverallSkillMatch  float64 `json:"overall_skill_match"`

	// SkillRankScore and EmbeddingRankScore are position-derived scores in
	// [0,1]; 0 means the role was absent from that candidate list.
	SkillRankScore     float64 `json:"skill_rank_score"`
	EmbeddingRankScore float64 `json:"embedding_rank_score"`

	// EmbeddingSimilarity is the raw cosine similarity in [-1,1] when the
	// role came through the embedding list, 0 otherwise.
	EmbeddingSimilarity float64 `json:"embedding_similarity"`

	// FinalScore is the fused ranking key:
	// (SkillRankScore*0.6 + EmbeddingRankScore*0.4) * 100.
	FinalScore float64 `json:"final_score"`

	// PortalLinks maps portal name to a prebuilt search link.
	PortalLinks map[string]PortalLink `json:"job_portal_links,omitempty"`
}

// Recommendation is the matching engine's public result.
type Recommendation struct {
	TopMatches      []JobMatch `json:"top_matches"`
	TotalSkills     int        `json:"total_skills"`
	ExperienceYears int        `json:"experience_years"`
	Message         string     `json:"message"`
}

// Package matching implements the hybrid job-matching engine: skill-overlap
// scoring, embedding-similarity scoring, and rank fusion over the two.
package matching

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-insight/internal/embedding"
	"github.com/jonathan/resume-insight/internal/types"
)

const (
	// fusionPoolSize is the depth of each candidate sub-list feeding rank
	// fusion: rank 0 scores 1.0, rank 9 scores 0.1.
	fusionPoolSize = 10

	skillRankWeight     = 0.6
	embeddingRankWeight = 0.4

	// DefaultTopK is the number of fused matches returned when the caller
	// does not ask for a specific count.
	DefaultTopK = 5

	// DefaultLocation parameterizes the generated job-portal links.
	DefaultLocation = "India"

	// NoSkillsMessage is returned when matching short-circuits on an empty
	// skill profile.
	NoSkillsMessage = "No skills found in resume"
)

// Engine ranks the job-role catalog against skill profiles. Job embeddings
// are computed once at construction and cached for the process lifetime;
// the engine performs no I/O afterwards except the per-request résumé embed.
type Engine struct {
	catalog    *types.JobRoleCatalog
	oracle     embedding.Oracle
	log        *zap.Logger
	jobVectors map[string][]float32 // role ID -> cached embedding
}

// New builds an engine over the given catalog. The oracle may be nil, and
// batch-embedding failures are tolerated: in both cases embedding-based
// scoring contributes nothing and fusion degenerates to pure skill-overlap
// ranking.
func New(ctx context.Context, cat *types.JobRoleCatalog, oracle embedding.Oracle, log *zap.Logger) *Engine {
	if cat == nil {
		cat = &types.JobRoleCatalog{}
	}
	if log == nil {
		log = zap.NewNop()
	}

	e := &Engine{
		catalog: cat,
		oracle:  oracle,
		log:     log,
	}
	e.embedCatalog(ctx)
	return e
}

// embedCatalog caches one embedding per job role, keyed by role ID.
func (e *Engine) embedCatalog(ctx context.Context) {
	if e.oracle == nil || e.catalog.Len() == 0 {
		return
	}

	texts := make([]string, e.catalog.Len())
	for i := range e.catalog.Roles {
		texts[i] = JobDescriptionText(&e.catalog.Roles[i])
	}

	vectors, err := e.oracle.EmbedBatch(ctx, texts)
	if err != nil {
		e.log.Warn("job role embedding failed; matching will use skill overlap only",
			zap.Error(err))
		return
	}

	e.jobVectors = make(map[string][]float32, len(vectors))
	for i := range e.catalog.Roles {
		e.jobVectors[e.catalog.Roles[i].ID] = vectors[i]
	}
	e.log.Info("job role embeddings cached", zap.Int("roles", len(e.jobVectors)))
}

// JobDescriptionText builds the canonical descriptive text embedded per role.
func JobDescriptionText(role *types.JobRole) string {
	return fmt.Sprintf("%s. %s. Required skills: %s. Nice to have: %s",
		role.Title,
		role.Description,
		strings.Join(role.RequiredSkills, " "),
		strings.Join(role.NiceToHave, " "))
}

// ResumeProfileText builds the descriptive text embedded per résumé.
func ResumeProfileText(profile *types.SkillProfile) string {
	skillText := strings.Join(profile.Skills, " ")
	if profile.ExperienceYears > 0 {
		return fmt.Sprintf("Professional with %d years of experience in %s",
			profile.ExperienceYears, skillText)
	}
	return fmt.Sprintf("Professional with skills in %s", skillText)
}

// SkillMatchPercent returns the percentage of job skills present in the
// résumé skill set, rounded to two decimals. Both sides are compared
// case-insensitively as sets; an empty job list scores 0.
func SkillMatchPercent(resumeLower map[string]bool, jobSkills []string) float64 {
	jobSet := lowerSet(jobSkills)
	if len(jobSet) == 0 {
		return 0
	}

	matched := 0
	for skill := range jobSet {
		if resumeLower[skill] {
			matched++
		}
	}
	return round2(float64(matched) / float64(len(jobSet)) * 100)
}

// MatchingSkills returns the résumé display names present in the job's
// skill list, in profile order (sorted by display name).
func MatchingSkills(profile *types.SkillProfile, jobSkills []string) []string {
	jobSet := lowerSet(jobSkills)
	var matching []string
	for i, lower := range profile.SkillsLower {
		if jobSet[lower] {
			matching = append(matching, profile.Skills[i])
		}
	}
	return matching
}

// MissingSkills returns the job's required skills absent from the résumé,
// preserving catalog order and display form. Only required skills are
// considered, never nice-to-haves.
func MissingSkills(resumeLower map[string]bool, required []string) []string {
	var missing []string
	for _, skill := range required {
		if !resumeLower[strings.ToLower(skill)] {
			missing = append(missing, skill)
		}
	}
	return missing
}

// matchBySkills scores every role by skill overlap and returns the top k,
// ordered by (required match desc, overall match desc, role ID asc). The
// role-ID tiebreak keeps results deterministic across runs.
func (e *Engine) matchBySkills(resumeLower map[string]bool, k int) []types.JobMatch {
	matches := make([]types.JobMatch, 0, e.catalog.Len())
	for i := range e.catalog.Roles {
		role := e.catalog.Roles[i]
		matches = append(matches, types.JobMatch{
			JobRole:            role,
			RequiredSkillMatch: SkillMatchPercent(resumeLower, role.RequiredSkills),
			OverallSkillMatch:  SkillMatchPercent(resumeLower, role.AllSkills()),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].RequiredSkillMatch != matches[j].RequiredSkillMatch {
			return matches[i].RequiredSkillMatch > matches[j].RequiredSkillMatch
		}
		if matches[i].OverallSkillMatch != matches[j].OverallSkillMatch {
			return matches[i].OverallSkillMatch > matches[j].OverallSkillMatch
		}
		return matches[i].ID < matches[j].ID
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches
}

// matchByEmbeddings ranks roles by cosine similarity between the résumé
// vector and the cached role vectors. Returns nil when the oracle is
// absent, the cache is empty, or the résumé embed fails, so that fusion
// falls back to pure skill-overlap ranking.
func (e *Engine) matchByEmbeddings(ctx context.Context, profile *types.SkillProfile, k int) []types.JobMatch {
	if e.oracle == nil || len(e.jobVectors) == 0 {
		return nil
	}

	resumeVec, err := e.oracle.Embed(ctx, ResumeProfileText(profile))
	if err != nil {
		e.log.Warn("resume embedding failed; falling back to skill overlap only",
			zap.Error(err))
		return nil
	}

	matches := make([]types.JobMatch, 0, len(e.jobVectors))
	for i := range e.catalog.Roles {
		role := e.catalog.Roles[i]
		vec, ok := e.jobVectors[role.ID]
		if !ok {
			continue
		}
		matches = append(matches, types.JobMatch{
			JobRole:             role,
			EmbeddingSimilarity: embedding.Cosine(resumeVec, vec),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].EmbeddingSimilarity != matches[j].EmbeddingSimilarity {
			return matches[i].EmbeddingSimilarity > matches[j].EmbeddingSimilarity
		}
		return matches[i].ID < matches[j].ID
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches
}

// fuse combines the two candidate lists by ordinal position rather than
// raw score, so the heterogeneous scales (percentage overlap vs cosine
// similarity) need no normalization. A role absent from both sub-lists
// never appears in the result.
func (e *Engine) fuse(ctx context.Context, profile *types.SkillProfile, resumeLower map[string]bool, topK int) []types.JobMatch {
	skillMatches := e.matchBySkills(resumeLower, fusionPoolSize)
	embedMatches := e.matchByEmbeddings(ctx, profile, fusionPoolSize)

	combined := make(map[string]*types.JobMatch, len(skillMatches)+len(embedMatches))

	for i := range skillMatches {
		m := skillMatches[i]
		m.SkillRankScore = rankScore(i)
		combined[m.ID] = &m
	}

	for i, em := range embedMatches {
		if existing, ok := combined[em.ID]; ok {
			existing.EmbeddingRankScore = rankScore(i)
			existing.EmbeddingSimilarity = em.EmbeddingSimilarity
			continue
		}
		m := em
		m.EmbeddingRankScore = rankScore(i)
		combined[m.ID] = &m
	}

	fused := make([]types.JobMatch, 0, len(combined))
	for _, m := range combined {
		m.FinalScore = (m.SkillRankScore*skillRankWeight + m.EmbeddingRankScore*embeddingRankWeight) * 100
		fused = append(fused, *m)
	}

	sort.Slice(fused, func(i, j int) bool {
		if fused[i].FinalScore != fused[j].FinalScore {
			return fused[i].FinalScore > fused[j].FinalScore
		}
		return fused[i].ID < fused[j].ID
	})

	if len(fused) > topK {
		fused = fused[:topK]
	}
	return fused
}

// Recommendations is the engine's public entry point. An empty skill
// profile short-circuits with an explanatory message before any scoring.
func (e *Engine) Recommendations(ctx context.Context, profile *types.SkillProfile, topK int, location string) *types.Recommendation {
	if profile == nil || profile.Empty() {
		return &types.Recommendation{Message: NoSkillsMessage}
	}
	if topK <= 0 {
		topK = DefaultTopK
	}
	if location == "" {
		location = DefaultLocation
	}

	resumeLower := make(map[string]bool, len(profile.SkillsLower))
	for _, skill := range profile.SkillsLower {
		resumeLower[skill] = true
	}

	matches := e.fuse(ctx, profile, resumeLower, topK)

	// Post-fusion enrichment: recompute skill lists against the full role
	// record and attach portal links. Presentation data, not ranking input.
	for i := range matches {
		m := &matches[i]
		m.MatchingSkills = MatchingSkills(profile, m.AllSkills())
		m.MissingSkills = MissingSkills(resumeLower, m.RequiredSkills)
		m.RequiredSkillMatch = SkillMatchPercent(resumeLower, m.RequiredSkills)
		m.OverallSkillMatch = SkillMatchPercent(resumeLower, m.AllSkills())
		m.PortalLinks = PortalLinks(m.Title, m.MatchingSkills, location)
	}

	return &types.Recommendation{
		TopMatches:      matches,
		TotalSkills:     profile.Count(),
		ExperienceYears: profile.ExperienceYears,
		Message:         fmt.Sprintf("Found %d matching job roles", len(matches)),
	}
}

// rankScore converts a 0-based position in a top-10 sub-list into a score
// in (0,1]: position 0 scores 1.0, position 9 scores 0.1.
func rankScore(index int) float64 {
	return float64(fusionPoolSize-index) / float64(fusionPoolSize)
}

func lowerSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		set[strings.ToLower(s)] = true
	}
	return set
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

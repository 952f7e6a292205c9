// Package chat implements the rule-based chat interface over résumé
// analysis data: ordered regex predicates routed first-match-wins to
// template response builders.
package chat

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-insight/internal/types"
)

// Context is the analysis data a response builder may read. Builders never
// mutate it; conversation history is kept by the caller and has no
// influence on routing.
type Context struct {
	Resume  *types.ResumeData
	Profile *types.SkillProfile
	Matches []types.JobMatch
}

// rule pairs an intent predicate with its response builder. Rules are
// evaluated in order against the lowercased query; the first match wins.
type rule struct {
	pattern *regexp.Regexp
	build   func(ctx *Context, query string) string
}

var rules = []rule{
	{regexp.MustCompile(`\bskills?\b`), skillsSummary},
	{regexp.MustCompile(`\b(?:jobs?|roles?|recommend\w*|suggestions?)\b`), jobSummary},
	{regexp.MustCompile(`improve|learn|study|get better`), improvementAdvice},
	{regexp.MustCompile(`missing|lack|need|require|gap`), missingSkills},
	{regexp.MustCompile(`resume|\bcv\b|profile|about me`), resumeSummary},
	{regexp.MustCompile(`experience`), experienceSummary},
}

// Respond routes a free-text query to the first matching rule's builder,
// or to the help text when nothing matches.
func Respond(ctx *Context, query string) string {
	lowered := strings.ToLower(query)
	for _, r := range rules {
		if r.pattern.MatchString(lowered) {
			return r.build(ctx, lowered)
		}
	}
	return helpText
}

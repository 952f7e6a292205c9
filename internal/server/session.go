package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-insight/internal/types"
)

// Session holds the analysis state for the single active resume. The API is
// logically single-user; the mutex only guards against net/http's
// concurrent handler invocations. A new upload replaces the state
// wholesale, so readers never observe a half-updated analysis.
type Session struct {
	mu sync.RWMutex

	analysisID     string
	uploadedAt     time.Time
	resume         *types.ResumeData
	profile        *types.SkillProfile
	recommendation *types.Recommendation
	history        []types.ChatMessage
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// Replace installs a fresh analysis, discarding any previous state
// including chat history.
func (s *Session) Replace(resume *types.ResumeData, profile *types.SkillProfile, rec *types.Recommendation) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.analysisID = uuid.NewString()
	s.uploadedAt = time.Now()
	s.resume = resume
	s.profile = profile
	s.recommendation = rec
	s.history = nil
	return s.analysisID
}

// Snapshot returns the current analysis state, or ok=false when no resume
// has been uploaded.
func (s *Session) Snapshot() (resume *types.ResumeData, profile *types.SkillProfile, rec *types.Recommendation, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.resume == nil {
		return nil, nil, nil, false
	}
	return s.resume, s.profile, s.recommendation, true
}

// SetRecommendation swaps in a re-run matching result, leaving the parsed
// resume and profile untouched.
func (s *Session) SetRecommendation(rec *types.Recommendation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recommendation = rec
}

// AppendChat records one user/assistant exchange.
func (s *Session) AppendChat(query, reply string) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history,
		types.ChatMessage{Role: types.RoleUser, Content: query, Timestamp: now},
		types.ChatMessage{Role: types.RoleAssistant, Content: reply, Timestamp: now},
	)
}

// History returns a copy of the chat log.
func (s *Session) History() []types.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.ChatMessage, len(s.history))
	copy(out, s.history)
	return out
}

// ClearHistory drops the chat log but keeps the analysis.
func (s *Session) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

// Reset clears everything, returning the session to its pre-upload state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analysisID = ""
	s.uploadedAt = time.Time{}
	s.resume = nil
	s.profile = nil
	s.recommendation = nil
	s.history = nil
}

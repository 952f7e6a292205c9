package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-insight/internal/advisor"
	"github.com/jonathan/resume-insight/internal/chat"
	"github.com/jonathan/resume-insight/internal/parsing"
	"github.com/jonathan/resume-insight/internal/skills"
	"github.com/jonathan/resume-insight/internal/types"
)

// maxUploadBytes caps the multipart resume upload at 10 MB.
const maxUploadBytes = 10 << 20

// handleUploadResume accepts a multipart PDF upload, runs the full
// analysis, and replaces the session state with the result.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, &ErrNoFile{Reason: "invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, &ErrNoFile{Reason: "missing 'file' field"})
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		s.errorResponse(w, &ErrValidation{Field: "file", Message: "only PDF files are supported"})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, &ErrNoFile{Reason: "unreadable upload"})
		return
	}

	text, err := parsing.ExtractText(data)
	if err != nil {
		s.log.Warn("text extraction failed", zap.String("file", header.Filename), zap.Error(err))
		s.errorResponse(w, err)
		return
	}

	resume := parsing.ParseResume(text)
	profile := skills.Extract(resume, s.extractOpts)
	rec := s.engine.Recommendations(r.Context(), profile, s.topK, s.location)

	analysisID := s.session.Replace(resume, profile, rec)
	s.log.Info("resume analyzed",
		zap.String("analysis_id", analysisID),
		zap.String("file", header.Filename),
		zap.Int("skills", profile.Count()),
		zap.Int("matches", len(rec.TopMatches)),
	)

	s.jsonResponse(w, http.StatusOK, types.AnalysisResponse{
		AnalysisID:     analysisID,
		Name:           resume.Name,
		Email:          resume.Email,
		Phone:          resume.Phone,
		LinkedIn:       resume.LinkedIn,
		GitHub:         resume.GitHub,
		Profile:        profile,
		Recommendation: rec,
	})
}

// handleSkills returns the current session's skill profile.
func (s *Server) handleSkills(w http.ResponseWriter, _ *http.Request) {
	_, profile, _, ok := s.session.Snapshot()
	if !ok {
		s.errorResponse(w, &ErrNoSession{})
		return
	}
	s.jsonResponse(w, http.StatusOK, profile)
}

// handleRecommendations re-runs matching over the stored profile,
// honoring optional top_k and location query parameters.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	_, profile, _, ok := s.session.Snapshot()
	if !ok {
		s.errorResponse(w, &ErrNoSession{})
		return
	}

	topK := s.topK
	if v := r.URL.Query().Get("top_k"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.errorResponse(w, &ErrValidation{Field: "top_k", Message: "must be a positive integer"})
			return
		}
		topK = n
	}

	location := s.location
	if v := r.URL.Query().Get("location"); v != "" {
		location = v
	}

	rec := s.engine.Recommendations(r.Context(), profile, topK, location)
	s.session.SetRecommendation(rec)
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleAdvice returns career advice derived from the current analysis.
func (s *Server) handleAdvice(w http.ResponseWriter, _ *http.Request) {
	_, profile, rec, ok := s.session.Snapshot()
	if !ok {
		s.errorResponse(w, &ErrNoSession{})
		return
	}

	advice, err := advisor.Advice(profile, rec.TopMatches)
	if err != nil {
		s.errorResponse(w, &ErrValidation{Field: "session", Message: err.Error()})
		return
	}
	s.jsonResponse(w, http.StatusOK, advice)
}

// handleChat routes one chat message against the session state and logs
// the exchange.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "message", Message: "must not be empty"})
		return
	}

	resume, profile, rec, ok := s.session.Snapshot()
	if !ok {
		s.errorResponse(w, &ErrNoSession{})
		return
	}

	ctx := &chat.Context{Resume: resume, Profile: profile, Matches: rec.TopMatches}
	reply := chat.Respond(ctx, req.Message)
	s.session.AppendChat(req.Message, reply)

	s.jsonResponse(w, http.StatusOK, types.ChatResponse{Reply: reply})
}

// handleChatHistory returns the conversation log.
func (s *Server) handleChatHistory(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"history": s.session.History(),
	})
}

// handleClearChatHistory drops the conversation log.
func (s *Server) handleClearChatHistory(w http.ResponseWriter, _ *http.Request) {
	s.session.ClearHistory()
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "history cleared"})
}

// handleResetSession clears the whole analysis session.
func (s *Server) handleResetSession(w http.ResponseWriter, _ *http.Request) {
	s.session.Reset()
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "session reset"})
}

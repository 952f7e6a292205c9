package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/resume-insight/internal/matching"
	"github.com/jonathan/resume-insight/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	// Rate limiting is exercised in its own package; disable it here so
	// repeated requests in one test cannot interfere.
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cat := &types.JobRoleCatalog{Roles: []types.JobRole{
		{
			ID:             "backend-developer",
			Title:          "Backend Developer",
			RequiredSkills: []string{"Python", "SQL", "Docker"},
		},
		{
			ID:             "data-analyst",
			Title:          "Data Analyst",
			RequiredSkills: []string{"SQL", "Excel"},
		},
	}}

	engine := matching.New(context.Background(), cat, nil, zap.NewNop())
	return New(Config{Port: 0, SubstringMatch: true}, engine, zap.NewNop())
}

// seedSession installs an analyzed resume directly, bypassing the PDF
// upload path.
func seedSession(s *Server) {
	resume := &types.ResumeData{
		Name:  "Jane Smith",
		Email: "jane@example.com",
		Phone: "+91 98765 43210",
	}
	profile := &types.SkillProfile{
		Skills:      []string{"Python", "SQL"},
		SkillsLower: []string{"python", "sql"},
		Categorized: map[string][]string{
			types.CategoryProgramming: {"Python"},
			types.CategoryDatabases:   {"SQL"},
		},
	}
	rec := s.engine.Recommendations(context.Background(), profile, 5, "")
	s.session.Replace(resume, profile, rec)
}

func doRequest(s *Server, method, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, "GET", "/health", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestCORS_Preflight(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, "OPTIONS", "/resume", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestUploadResume_MissingFile(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("unrelated", "value"))
	require.NoError(t, w.Close())

	rec := doRequest(s, "POST", "/resume", &buf, w.FormDataContentType())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "file")
}

func TestUploadResume_WrongExtension(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "resume.docx")
	require.NoError(t, err)
	_, err = fw.Write([]byte("not a pdf"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	rec := doRequest(s, "POST", "/resume", &buf, w.FormDataContentType())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "PDF")
}

func TestUploadResume_CorruptPDF(t *testing.T) {
	s := newTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "resume.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("garbage bytes, not a real pdf"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	rec := doRequest(s, "POST", "/resume", &buf, w.FormDataContentType())

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUploadResume_NotMultipart(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, "POST", "/resume", bytes.NewBufferString("plain body"), "text/plain")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSkills_NoSession(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, "GET", "/skills", nil, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no resume uploaded")
}

func TestSkills_WithSession(t *testing.T) {
	s := newTestServer(t)
	seedSession(s)

	rec := doRequest(s, "GET", "/skills", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var profile types.SkillProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, []string{"Python", "SQL"}, profile.Skills)
}

func TestRecommendations_WithSession(t *testing.T) {
	s := newTestServer(t)
	seedSession(s)

	rec := doRequest(s, "GET", "/recommendations", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.Recommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.TopMatches, 2)
	// Backend Developer covers 2 of 3 required skills (66.67%) against the
	// Data Analyst's 1 of 2 (50%), so it ranks first.
	assert.Equal(t, "backend-developer", result.TopMatches[0].ID)
}

func TestRecommendations_TopKParam(t *testing.T) {
	s := newTestServer(t)
	seedSession(s)

	rec := doRequest(s, "GET", "/recommendations?top_k=1", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.Recommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.TopMatches, 1)
}

func TestRecommendations_InvalidTopK(t *testing.T) {
	s := newTestServer(t)
	seedSession(s)

	rec := doRequest(s, "GET", "/recommendations?top_k=zero", nil, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendations_LocationParam(t *testing.T) {
	s := newTestServer(t)
	seedSession(s)

	rec := doRequest(s, "GET", "/recommendations?location=Remote", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var result types.Recommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.NotEmpty(t, result.TopMatches)
	assert.Contains(t, result.TopMatches[0].PortalLinks["LinkedIn"].URL, "Remote")
}

func TestAdvice_WithSession(t *testing.T) {
	s := newTestServer(t)
	seedSession(s)

	rec := doRequest(s, "GET", "/advice", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var advice types.CareerAdvice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &advice))
	assert.Equal(t, "Backend Developer", advice.TargetRole)
}

func TestAdvice_NoSession(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, "GET", "/advice", nil, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChat_RoundTrip(t *testing.T) {
	s := newTestServer(t)
	seedSession(s)

	body := bytes.NewBufferString(`{"message": "what skills do I have?"}`)
	rec := doRequest(s, "POST", "/chat", body, "application/json")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Reply, "Python")

	// The exchange lands in the history log.
	histRec := doRequest(s, "GET", "/chat/history", nil, "")
	require.Equal(t, http.StatusOK, histRec.Code)
	assert.Contains(t, histRec.Body.String(), "what skills do I have?")
	assert.Contains(t, histRec.Body.String(), types.RoleAssistant)
}

func TestChat_EmptyMessage(t *testing.T) {
	s := newTestServer(t)
	seedSession(s)

	rec := doRequest(s, "POST", "/chat", bytes.NewBufferString(`{"message": ""}`), "application/json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChat_InvalidJSON(t *testing.T) {
	s := newTestServer(t)
	seedSession(s)

	rec := doRequest(s, "POST", "/chat", bytes.NewBufferString("{broken"), "application/json")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChat_NoSession(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, "POST", "/chat", bytes.NewBufferString(`{"message": "hi skills"}`), "application/json")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChatHistory_Clear(t *testing.T) {
	s := newTestServer(t)
	seedSession(s)
	s.session.AppendChat("question", "answer")

	rec := doRequest(s, "DELETE", "/chat/history", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	histRec := doRequest(s, "GET", "/chat/history", nil, "")
	assert.NotContains(t, histRec.Body.String(), "question")
}

func TestSessionReset(t *testing.T) {
	s := newTestServer(t)
	seedSession(s)

	rec := doRequest(s, "DELETE", "/session", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	skillsRec := doRequest(s, "GET", "/skills", nil, "")
	assert.Equal(t, http.StatusNotFound, skillsRec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(s, "PUT", "/resume", nil, "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrNoSession{}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrNoFile{Reason: "x"}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "f", Message: "m"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(assert.AnError))
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "no resume uploaded yet", (&ErrNoSession{}).Error())
	assert.True(t, strings.Contains((&ErrNoFile{Reason: "missing 'file' field"}).Error(), "missing 'file' field"))
	assert.True(t, strings.Contains((&ErrValidation{Field: "top_k", Message: "must be positive"}).Error(), "top_k"))
}

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cornjebus/junie/internal/recommend"
	"github.com/Cornjebus/junie/internal/types"
)

// fakeEngine returns a canned result or error.
type fakeEngine struct {
	result *types.Result
	err    error
	topN   int
}

func (f *fakeEngine) Recommend(_ context.Context, _ *types.UserProfile, topN int) (*types.Result, error) {
	f.topN = topN
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// fakeProfiles is an in-memory ProfileStore.
type fakeProfiles struct {
	profiles map[uuid.UUID]*types.UserProfile
	err      error
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{profiles: make(map[uuid.UUID]*types.UserProfile)}
}

func (f *fakeProfiles) SaveProfile(_ context.Context, userID uuid.UUID, profile *types.UserProfile) error {
	if f.err != nil {
		return f.err
	}
	f.profiles[userID] = profile
	return nil
}

func (f *fakeProfiles) GetProfile(_ context.Context, userID uuid.UUID) (*types.UserProfile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[userID], nil
}

// fakeTemplates is an in-memory TemplateCatalog.
type fakeTemplates struct {
	templates map[uuid.UUID]*types.PathTemplate
}

func (f *fakeTemplates) GetTemplate(_ context.Context, id uuid.UUID) (*types.PathTemplate, error) {
	return f.templates[id], nil
}

func (f *fakeTemplates) ListTemplates(_ context.Context) ([]*types.PathTemplate, error) {
	var out []*types.PathTemplate
	for _, t := range f.templates {
		out = append(out, t)
	}
	return out, nil
}

func okResult() *types.Result {
	return &types.Result{
		Recommendations: []types.Recommendation{
			{Title: "Tutoring", WhyYou: []string{"one", "two", "three"}, FitScore: 4},
		},
		Source:      types.SourceDatabase,
		Diagnostics: types.Diagnostics{CandidatesRetrieved: 3, ElapsedMs: 50},
	}
}

func profileBody() map[string]any {
	return map[string]any{
		"sparks": []string{"Coaching"},
		"values": []string{"Freedom"},
		"dream":  "Help people change careers while working for myself",
	}
}

func newTestServer(t *testing.T, engine Recommender, profiles ProfileStore, templates TemplateCatalog) *Server {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	return New(Config{Port: 0, TopN: 5}, engine, profiles, templates)
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t, &fakeEngine{result: okResult()}, nil, nil)

	rec := doJSON(t, s.Handler(), "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHandleRecommend(t *testing.T) {
	engine := &fakeEngine{result: okResult()}
	s := newTestServer(t, engine, nil, nil)

	rec := doJSON(t, s.Handler(), "POST", "/recommend", map[string]any{
		"profile": profileBody(),
		"top_n":   3,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, engine.topN)

	var result types.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, types.SourceDatabase, result.Source)
	require.Len(t, result.Recommendations, 1)
	assert.Equal(t, "Tutoring", result.Recommendations[0].Title)
}

func TestHandleRecommend_DefaultTopN(t *testing.T) {
	engine := &fakeEngine{result: okResult()}
	s := newTestServer(t, engine, nil, nil)

	rec := doJSON(t, s.Handler(), "POST", "/recommend", map[string]any{"profile": profileBody()})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, engine.topN, "server default applies when top_n is omitted")
}

func TestHandleRecommend_MissingProfile(t *testing.T) {
	s := newTestServer(t, &fakeEngine{result: okResult()}, nil, nil)

	rec := doJSON(t, s.Handler(), "POST", "/recommend", map[string]any{"top_n": 3})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "profile is required")
}

func TestHandleRecommend_InvalidJSON(t *testing.T) {
	s := newTestServer(t, &fakeEngine{result: okResult()}, nil, nil)

	req := httptest.NewRequest("POST", "/recommend", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleRecommend_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "invalid profile",
			err:    &recommend.ErrInvalidProfile{Reason: "sparks must not be empty"},
			status: http.StatusBadRequest,
		},
		{
			name:   "embedding unavailable",
			err:    &recommend.ErrEmbeddingUnavailable{Cause: fmt.Errorf("timeout")},
			status: http.StatusBadGateway,
		},
		{
			name:   "unexpected",
			err:    fmt.Errorf("boom"),
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, &fakeEngine{err: tt.err}, nil, nil)
			rec := doJSON(t, s.Handler(), "POST", "/recommend", map[string]any{"profile": profileBody()})
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestProfileRoundTrip(t *testing.T) {
	profiles := newFakeProfiles()
	s := newTestServer(t, &fakeEngine{result: okResult()}, profiles, nil)
	userID := uuid.New()

	rec := doJSON(t, s.Handler(), "PUT", "/users/"+userID.String()+"/profile", profileBody())
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s.Handler(), "GET", "/users/"+userID.String()+"/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got types.UserProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{"Coaching"}, got.Sparks)
}

func TestSaveProfile_RejectsInvalid(t *testing.T) {
	s := newTestServer(t, &fakeEngine{result: okResult()}, newFakeProfiles(), nil)

	rec := doJSON(t, s.Handler(), "PUT", "/users/"+uuid.NewString()+"/profile", map[string]any{
		"sparks": []string{"Coaching"},
		"values": []string{"Freedom"},
		"dream":  "short",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveProfile_InvalidUserID(t *testing.T) {
	s := newTestServer(t, &fakeEngine{result: okResult()}, newFakeProfiles(), nil)

	rec := doJSON(t, s.Handler(), "PUT", "/users/not-a-uuid/profile", profileBody())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid user ID")
}

func TestGetProfile_NotFound(t *testing.T) {
	s := newTestServer(t, &fakeEngine{result: okResult()}, newFakeProfiles(), nil)

	rec := doJSON(t, s.Handler(), "GET", "/users/"+uuid.NewString()+"/profile", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecommendForUser(t *testing.T) {
	profiles := newFakeProfiles()
	userID := uuid.New()
	profiles.profiles[userID] = &types.UserProfile{
		Sparks: []string{"Coaching"},
		Values: []string{"Freedom"},
		Dream:  "Help people change careers while working for myself",
	}

	engine := &fakeEngine{result: okResult()}
	s := newTestServer(t, engine, profiles, nil)

	rec := doJSON(t, s.Handler(), "POST", "/users/"+userID.String()+"/recommendations", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, engine.topN)
}

func TestRecommendForUser_NoProfile(t *testing.T) {
	s := newTestServer(t, &fakeEngine{result: okResult()}, newFakeProfiles(), nil)

	rec := doJSON(t, s.Handler(), "POST", "/users/"+uuid.NewString()+"/recommendations", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTemplates_UnconfiguredReturns503(t *testing.T) {
	s := newTestServer(t, &fakeEngine{result: okResult()}, nil, nil)

	rec := doJSON(t, s.Handler(), "GET", "/templates", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetTemplate(t *testing.T) {
	id := uuid.New()
	catalog := &fakeTemplates{templates: map[uuid.UUID]*types.PathTemplate{
		id: {ID: id, Title: "Freelance Consulting", IsActive: true},
	}}
	s := newTestServer(t, &fakeEngine{result: okResult()}, nil, catalog)

	rec := doJSON(t, s.Handler(), "GET", "/templates/"+id.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Freelance Consulting")

	rec = doJSON(t, s.Handler(), "GET", "/templates/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, s.Handler(), "GET", "/templates/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListTemplates(t *testing.T) {
	id := uuid.New()
	catalog := &fakeTemplates{templates: map[uuid.UUID]*types.PathTemplate{
		id: {ID: id, Title: "Tutoring", IsActive: true},
	}}
	s := newTestServer(t, &fakeEngine{result: okResult()}, nil, catalog)

	rec := doJSON(t, s.Handler(), "GET", "/templates", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":1`)
}

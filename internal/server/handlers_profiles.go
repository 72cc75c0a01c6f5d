package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Cornjebus/junie/internal/types"
)

// handleSaveProfile upserts a user's onboarding profile.
func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	if s.profiles == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "profile storage not configured")
		return
	}

	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	var profile types.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := profile.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.profiles.SaveProfile(r.Context(), userID, &profile); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleGetProfile returns a user's stored profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if s.profiles == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "profile storage not configured")
		return
	}

	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	profile, err := s.profiles.GetProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get profile")
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "profile not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleRecommendForUser runs the pipeline against a stored profile.
func (s *Server) handleRecommendForUser(w http.ResponseWriter, r *http.Request) {
	if s.profiles == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "profile storage not configured")
		return
	}

	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	profile, err := s.profiles.GetProfile(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get profile")
		return
	}
	if profile == nil {
		s.errorResponse(w, http.StatusNotFound, "profile not found")
		return
	}

	var req struct {
		TopN *int `json:"top_n,omitempty"`
	}
	// An empty body means defaults; only reject bodies that fail to parse.
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	}

	result, err := s.engine.Recommend(r.Context(), profile, s.resolveTopN(req.TopN))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

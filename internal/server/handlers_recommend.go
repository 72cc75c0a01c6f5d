package server

import (
	"encoding/json"
	"net/http"

	"github.com/Cornjebus/junie/internal/types"
)

// recommendRequest is the body of POST /recommend.
type recommendRequest struct {
	Profile *types.UserProfile `json:"profile"`
	TopN    *int               `json:"top_n,omitempty"`
}

// handleRecommend runs the pipeline for a profile supplied in the request
// body.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Profile == nil {
		s.errorResponse(w, http.StatusBadRequest, "profile is required")
		return
	}

	result, err := s.engine.Recommend(r.Context(), req.Profile, s.resolveTopN(req.TopN))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// resolveTopN picks the request's top_n when given, otherwise the server
// default.
func (s *Server) resolveTopN(requested *int) int {
	if requested != nil {
		return *requested
	}
	if s.topN > 0 {
		return s.topN
	}
	return -1 // engine applies its own default
}

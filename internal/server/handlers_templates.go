package server

import (
	"net/http"

	"github.com/google/uuid"
)

// handleListTemplates returns all active templates without embeddings.
func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	if s.templates == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "template catalog not configured")
		return
	}

	templates, err := s.templates.ListTemplates(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to list templates")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"templates": templates,
		"count":     len(templates),
	})
}

// handleGetTemplate returns one template by ID.
func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	if s.templates == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "template catalog not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid template ID")
		return
	}

	tmpl, err := s.templates.GetTemplate(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to get template")
		return
	}
	if tmpl == nil {
		s.errorResponse(w, http.StatusNotFound, "template not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, tmpl)
}

// Package server - handlers_templates.go serves the template catalog.
package server

import (
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/catalog"
)

// handleListTemplates lists templates, optionally filtered by ?category=.
func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = catalog.AllCategory
	}
	s.jsonResponse(w, http.StatusOK, catalog.ByCategory(category))
}

// handleGetTemplate returns a single template.
func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	tmpl, ok := catalog.Lookup(id)
	if !ok {
		s.writeError(w, r, &ErrNotFound{Resource: "template", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, tmpl)
}

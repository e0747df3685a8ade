// Package server - handlers_drafts.go provides session issuing and owner-scoped draft endpoints.
package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/resume-analyzer/internal/builder"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/server/middleware"
	"github.com/jonathan/resume-analyzer/internal/types"
	"go.uber.org/zap"
)

// ---------------------------------------------------------------------
// Session Handlers
// ---------------------------------------------------------------------

// handleCreateSession issues an anonymous owner id and a token for it.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.jwtService.NewSession()
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.log.Debug("session issued", zap.String(logger.FieldOwner, session.OwnerID.String()))
	s.jsonResponse(w, http.StatusCreated, types.SessionResponse{
		OwnerID:   session.OwnerID,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}

// ---------------------------------------------------------------------
// Draft Handlers
// ---------------------------------------------------------------------

// draftParams returns the session owner and, when the route has one, the draft id.
func (s *Server) draftParams(r *http.Request, withID bool) (owner, id uuid.UUID, err error) {
	owner, err = middleware.OwnerID(r)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if !withID {
		return owner, uuid.Nil, nil
	}
	id, err = uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, &ErrValidation{Field: "id", Message: "must be a UUID"}
	}
	return owner, id, nil
}

// decodeDraft reads and validates a draft body.
func (s *Server) decodeDraft(w http.ResponseWriter, r *http.Request) (*types.SaveDraftRequest, error) {
	var req types.SaveDraftRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		return nil, err
	}
	if err := checkTemplate(req.Data.Template); err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *Server) handleListDrafts(w http.ResponseWriter, r *http.Request) {
	owner, _, err := s.draftParams(r, false)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	drafts, err := s.store.ListDrafts(r.Context(), owner)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if drafts == nil {
		drafts = []types.Draft{}
	}
	s.jsonResponse(w, http.StatusOK, drafts)
}

func (s *Server) handleCreateDraft(w http.ResponseWriter, r *http.Request) {
	owner, _, err := s.draftParams(r, false)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	req, err := s.decodeDraft(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	draft, err := s.store.CreateDraft(r.Context(), owner, req.Title, req.Data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.log.Debug("draft created",
		zap.String(logger.FieldOwner, owner.String()),
		zap.String(logger.FieldDraft, draft.ID.String()))
	s.jsonResponse(w, http.StatusCreated, draft)
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	owner, id, err := s.draftParams(r, true)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	draft, err := s.store.GetDraft(r.Context(), owner, id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, draft)
}

func (s *Server) handleUpdateDraft(w http.ResponseWriter, r *http.Request) {
	owner, id, err := s.draftParams(r, true)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	req, err := s.decodeDraft(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	draft, err := s.store.UpdateDraft(r.Context(), owner, id, req.Title, req.Data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, draft)
}

func (s *Server) handleDeleteDraft(w http.ResponseWriter, r *http.Request) {
	owner, id, err := s.draftParams(r, true)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.store.DeleteDraft(r.Context(), owner, id); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleScoreDraft runs the builder score on a saved draft.
func (s *Server) handleScoreDraft(w http.ResponseWriter, r *http.Request) {
	owner, id, err := s.draftParams(r, true)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	draft, err := s.store.GetDraft(r.Context(), owner, id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, builder.CalculateATSScore(draft.Data))
}

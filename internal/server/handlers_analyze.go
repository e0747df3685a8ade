// Package server - handlers_analyze.go provides the text, upload, URL and builder analysis endpoints.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jonathan/resume-analyzer/internal/analysis"
	"github.com/jonathan/resume-analyzer/internal/builder"
	"github.com/jonathan/resume-analyzer/internal/catalog"
	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/jonathan/resume-analyzer/internal/logger"
	"github.com/jonathan/resume-analyzer/internal/types"
	"go.uber.org/zap"
)

// multipartMemory is how much of an upload is buffered in memory before
// spilling to a temporary file.
const multipartMemory = 1 << 20

// decodeJSON reads a size-limited JSON body into dst and validates it.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return &ErrPayloadTooLarge{Limit: maxBytesErr.Limit}
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON"}
	}
	if err := s.validate.Struct(dst); err != nil {
		return fromValidator(err)
	}
	return nil
}

// checkTemplate rejects template ids missing from the catalog. Empty means the default.
func checkTemplate(id string) error {
	if id == "" {
		return nil
	}
	if _, ok := catalog.Lookup(id); !ok {
		return &ErrValidation{Field: "template", Message: fmt.Sprintf("unknown template %q", id)}
	}
	return nil
}

// handleAnalyzeData scores structured builder data.
func (s *Server) handleAnalyzeData(w http.ResponseWriter, r *http.Request) {
	var data types.ResumeData
	if err := s.decodeJSON(w, r, &data); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := checkTemplate(data.Template); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, builder.CalculateATSScore(data))
}

// handleAnalyzeText scores pasted resume text.
func (s *Server) handleAnalyzeText(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeTextRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, analysis.Analyze(req.Text))
}

// handleAnalyzeUpload extracts text from an uploaded document and scores it.
func (s *Server) handleAnalyzeUpload(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > s.maxUploadBytes {
		s.writeError(w, r, &ErrPayloadTooLarge{Limit: s.maxUploadBytes})
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.writeError(w, r, &ErrPayloadTooLarge{Limit: s.maxUploadBytes})
			return
		}
		s.writeError(w, r, &ErrValidation{Field: "file", Message: "expected a multipart form upload"})
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, r, &ErrValidation{Field: "file", Message: "is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	log := logger.WithFields(s.log, zap.String(logger.FieldSource, header.Filename))
	text, err := extract.Extract(header.Filename, data)
	if err != nil {
		log.Info("upload rejected", zap.Error(err))
		s.writeError(w, r, err)
		return
	}

	report := analysis.Analyze(text)
	log.Debug("upload analyzed", zap.Int(logger.FieldScore, report.OverallScore))
	s.jsonResponse(w, http.StatusOK, report)
}

// handleAnalyzeURL fetches a hosted resume and scores its text.
func (s *Server) handleAnalyzeURL(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeURLRequest
	if err := s.decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	text, err := fetch.ResumeText(r.Context(), req.URL, s.fetchOptions)
	if err != nil {
		var fetchErr *fetch.Error
		if !errors.As(err, &fetchErr) {
			err = &fetch.Error{URL: req.URL, Message: "fetch failed", Cause: err}
		}
		s.log.Info("url fetch failed", zap.String(logger.FieldURL, req.URL), zap.Error(err))
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, analysis.Analyze(text))
}

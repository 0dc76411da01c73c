package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/importer"
	"github.com/jonathan/resume-studio/internal/normalize"
	"github.com/jonathan/resume-studio/internal/pipeline"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
)

// maxArchiveBytes caps the accepted archive payload size.
const maxArchiveBytes = 64 << 20

// SaveDocumentRequest is the body for POST /documents and PUT
// /documents/{id}. The document may be a bare or enveloped document; it is
// normalized before storage.
type SaveDocumentRequest struct {
	Title    string          `json:"title" validate:"required,min=1"`
	Document json.RawMessage `json:"document" validate:"required"`
}

// Validate validates the SaveDocumentRequest using the validator.
func (r *SaveDocumentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SaveDocumentResponse is the response for document create/update.
type SaveDocumentResponse struct {
	ID string `json:"id"`
}

// ValidateResponse extends the envelope validation result with advisory
// document schema warnings.
type ValidateResponse struct {
	schemas.Result
	SchemaWarnings []string `json:"schemaWarnings,omitempty"`
}

// handleImport imports a foreign export archive posted as the raw request
// body and returns the import result. Import errors are reported in the
// result, not as HTTP failures.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxArchiveBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read archive body: "+err.Error())
		return
	}
	if len(data) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "Archive body is required")
		return
	}

	result := importer.ImportArchive(data, nil)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleNormalize normalizes an arbitrary document-shaped JSON body.
// Structural rejection (non-object input) is the only failure mode.
func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxArchiveBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body: "+err.Error())
		return
	}

	doc, err := normalize.Bytes(data)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}

// handleValidate validates an enveloped document and reports structural
// errors, warnings, and advisory schema warnings.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxArchiveBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body: "+err.Error())
		return
	}

	resp := ValidateResponse{Result: schemas.ValidateEnvelopeBytes(data)}
	if resp.IsValid {
		resp.SchemaWarnings = schemas.CheckDocumentSchema(data)
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleCreateDocument normalizes and stores a new document.
func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var req SaveDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	env, err := envelopeFromRequest(req.Document)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	id, err := s.db.CreateDocument(r.Context(), req.Title, env)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store document: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, SaveDocumentResponse{ID: id.String()})
}

// handleListDocuments lists stored document summaries.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.db.ListDocuments(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list documents: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, summaries)
}

// handleGetDocument returns one stored document with its envelope content.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	rec, err := s.db.GetDocument(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrDocumentNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Document not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get document: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"id":             rec.ID.String(),
		"title":          rec.Title,
		"schema_version": rec.SchemaVersion,
		"content":        json.RawMessage(rec.Content),
		"created_at":     rec.CreatedAt,
		"updated_at":     rec.UpdatedAt,
	})
}

// handleUpdateDocument replaces a stored document.
func (s *Server) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	var req SaveDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	env, err := envelopeFromRequest(req.Document)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.db.UpdateDocument(r.Context(), id, req.Title, env); err != nil {
		if errors.Is(err, db.ErrDocumentNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Document not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update document: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, SaveDocumentResponse{ID: id.String()})
}

// handleDeleteDocument removes a stored document.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	if err := s.db.DeleteDocument(r.Context(), id); err != nil {
		if errors.Is(err, db.ErrDocumentNotFound) {
			s.errorResponse(w, http.StatusNotFound, "Document not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to delete document: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// envelopeFromRequest accepts a bare or enveloped document body and
// returns the envelope to store.
func envelopeFromRequest(raw json.RawMessage) (*types.Envelope, error) {
	return pipeline.LoadEnvelope(raw)
}

// pathID parses the {id} path segment as a UUID.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid document ID")
		return uuid.Nil, false
	}
	return id, true
}

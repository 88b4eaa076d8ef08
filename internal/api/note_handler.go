package api

import (
	"log/slog"
	"net/http"

	"github.com/packageIncoming/project-locus-prototype/internal/api/shared"
	"github.com/packageIncoming/project-locus-prototype/internal/domain"
	"github.com/packageIncoming/project-locus-prototype/internal/platform/logger"
	"github.com/packageIncoming/project-locus-prototype/internal/redact"
	"github.com/packageIncoming/project-locus-prototype/internal/store"
)

// NoteHandler handles note-related HTTP requests.
type NoteHandler struct {
	noteStore store.NoteStore
	logger    *slog.Logger
}

// NewNoteHandler creates a new NoteHandler with the given dependencies.
func NewNoteHandler(noteStore store.NoteStore, logger *slog.Logger) *NoteHandler {
	if noteStore == nil {
		panic("noteStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &NoteHandler{
		noteStore: noteStore,
		logger:    logger.With(slog.String("component", "note_handler")),
	}
}

// CreateNote handles POST /notes requests.
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateNoteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	note, err := domain.NewNote(userID, req.Title, req.Content)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid note data: "+err.Error())
		return
	}

	if err := h.noteStore.Create(r.Context(), note); err != nil {
		log.Error("failed to create note", "error", redact.Error(err))
		HandleAPIError(w, r, err, "Failed to create note")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, noteToResponse(note))
}

// GetNote handles GET /notes/{id} requests.
func (h *NoteHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, noteID, ok := requireUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	note, err := h.noteStore.GetOwned(r.Context(), noteID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, noteToResponse(note))
}

// ListNotes handles GET /notes requests.
func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	notes, err := h.noteStore.ListByUser(r.Context(), userID)
	if err != nil {
		log.Error("failed to list notes", "error", redact.Error(err))
		HandleAPIError(w, r, err, "Failed to list notes")
		return
	}

	responses := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		responses = append(responses, noteToResponse(note))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// UpdateNote handles PUT /notes/{id} requests.
func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, noteID, ok := requireUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	var req UpdateNoteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	note, err := h.noteStore.GetOwned(r.Context(), noteID, userID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := note.Update(req.Title, req.Content); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid note data: "+err.Error())
		return
	}

	if err := h.noteStore.Update(r.Context(), note); err != nil {
		log.Error("failed to update note", "error", redact.Error(err))
		HandleAPIError(w, r, err, "Failed to update note")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, noteToResponse(note))
}

// DeleteNote handles DELETE /notes/{id} requests.
// Flashcards generated from the note are deleted with it.
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, noteID, ok := requireUserIDAndPathUUID(w, r, "id", log)
	if !ok {
		return
	}

	// Owner-scoped lookup first so deleting someone else's note 404s.
	if _, err := h.noteStore.GetOwned(r.Context(), noteID, userID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.noteStore.Delete(r.Context(), noteID); err != nil {
		log.Error("failed to delete note", "error", redact.Error(err))
		HandleAPIError(w, r, err, "Failed to delete note")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/packageIncoming/project-locus-prototype/internal/api/shared"
	"github.com/packageIncoming/project-locus-prototype/internal/domain"
	"github.com/packageIncoming/project-locus-prototype/internal/platform/logger"
	"github.com/packageIncoming/project-locus-prototype/internal/redact"
	"github.com/packageIncoming/project-locus-prototype/internal/service"
)

// GenerationHandler handles AI flashcard generation requests.
type GenerationHandler struct {
	generationService service.GenerationService
	logger            *slog.Logger
}

// NewGenerationHandler creates a new GenerationHandler with the given
// dependencies.
func NewGenerationHandler(
	generationService service.GenerationService,
	logger *slog.Logger,
) *GenerationHandler {
	if generationService == nil {
		panic("generationService cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &GenerationHandler{
		generationService: generationService,
		logger:            logger.With(slog.String("component", "generation_handler")),
	}
}

// GenerateFlashcards handles POST /ai/generate requests.
// It generates flashcards from one of the user's notes and persists them as
// a single batch. The call is synchronous: the response carries the new
// cards or an error, never a partial set.
func (h *GenerationHandler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	var req GenerateFlashcardsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	cards, err := h.generationService.GenerateFlashcards(r.Context(), userID, service.GenerationRequest{
		NoteID: req.NoteID,
		Count:  req.Count,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, GenerateFlashcardsResponse{
		Flashcards: cardsToResponse(cards),
	})
}

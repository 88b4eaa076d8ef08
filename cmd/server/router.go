package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/packageIncoming/project-locus-prototype/internal/api"
	apiMiddleware "github.com/packageIncoming/project-locus-prototype/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		app.logger,
	)
	noteHandler := api.NewNoteHandler(app.noteStore, app.logger)
	cardHandler := api.NewCardHandler(
		app.cardStore,
		app.noteStore,
		app.cardReviewService,
		app.logger,
	)
	generationHandler := api.NewGenerationHandler(app.generationService, app.logger)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Note endpoints
			r.Post("/notes", noteHandler.CreateNote)
			r.Get("/notes", noteHandler.ListNotes)
			r.Get("/notes/{id}", noteHandler.GetNote)
			r.Put("/notes/{id}", noteHandler.UpdateNote)
			r.Delete("/notes/{id}", noteHandler.DeleteNote)
			r.Get("/notes/{id}/flashcards", cardHandler.ListCardsByNote)

			// Flashcard endpoints. /flashcards/next is registered before the
			// {id} routes so chi matches it literally.
			r.Post("/flashcards", cardHandler.CreateCard)
			r.Get("/flashcards", cardHandler.ListCards)
			r.Get("/flashcards/next", cardHandler.GetNextReviewCard)
			r.Get("/flashcards/{id}", cardHandler.GetCard)
			r.Put("/flashcards/{id}", cardHandler.UpdateCard)
			r.Delete("/flashcards/{id}", cardHandler.DeleteCard)
			r.Patch("/flashcards/{id}/review", cardHandler.SubmitReview)

			// AI generation endpoint
			r.Post("/ai/generate", generationHandler.GenerateFlashcards)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}

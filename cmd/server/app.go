package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/packageIncoming/project-locus-prototype/internal/config"
	"github.com/packageIncoming/project-locus-prototype/internal/domain/srs"
	"github.com/packageIncoming/project-locus-prototype/internal/generation"
	"github.com/packageIncoming/project-locus-prototype/internal/platform/gemini"
	"github.com/packageIncoming/project-locus-prototype/internal/platform/postgres"
	"github.com/packageIncoming/project-locus-prototype/internal/service"
	"github.com/packageIncoming/project-locus-prototype/internal/service/auth"
	"github.com/packageIncoming/project-locus-prototype/internal/service/card_review"
	"github.com/packageIncoming/project-locus-prototype/internal/store"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	noteStore store.NoteStore
	cardStore store.CardStore

	jwtService        auth.JWTService
	passwordVerifier  auth.PasswordVerifier
	cardReviewService card_review.CardReviewService
	generationService service.GenerationService
}

// newApplication builds the application dependency graph from configuration.
// Everything that can fail at startup fails here, before the server listens:
// the database connection, the JWT service, the system instruction file, and
// the generative model client.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	appLogger *slog.Logger,
) (*application, error) {
	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		closeQuietly(db, appLogger)
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	// The system instruction is loaded exactly once. A missing or empty file
	// is a configuration error and stops the process.
	promptBuilder, err := generation.NewPromptBuilder(cfg.LLM.SystemInstructionPath)
	if err != nil {
		closeQuietly(db, appLogger)
		return nil, fmt.Errorf("failed to create prompt builder: %w", err)
	}

	textGenerator, err := gemini.NewClient(ctx, appLogger, cfg.LLM)
	if err != nil {
		closeQuietly(db, appLogger)
		return nil, fmt.Errorf("failed to create generative model client: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, appLogger)
	noteStore := postgres.NewPostgresNoteStore(db, appLogger)
	cardStore := postgres.NewPostgresCardStore(db, appLogger)

	srsService := srs.NewDefaultService()

	cardReviewService := card_review.NewCardReviewService(db, cardStore, srsService, appLogger)
	generationService := service.NewGenerationService(
		db,
		noteStore,
		cardStore,
		promptBuilder,
		textGenerator,
		appLogger,
	)

	return &application{
		config:            cfg,
		logger:            appLogger,
		db:                db,
		userStore:         userStore,
		noteStore:         noteStore,
		cardStore:         cardStore,
		jwtService:        jwtService,
		passwordVerifier:  auth.NewBcryptVerifier(),
		cardReviewService: cardReviewService,
		generationService: generationService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	closeQuietly(app.db, app.logger)
}

func closeQuietly(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("failed to close database connection", "error", err)
	}
}

// Package api provides the HTTP handlers for the service: authentication,
// note management, flashcard review, and AI flashcard generation.
package api

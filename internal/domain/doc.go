// Package domain defines the core business entities of the application:
// users, notes, and the flashcards generated from them.
package domain

// Package generation defines the AI flashcard-generation pipeline pieces that
// are independent of any particular model vendor: the prompt builder, the
// draft parser, the text-generator boundary interface, and the error taxonomy
// shared by all of them.
package generation

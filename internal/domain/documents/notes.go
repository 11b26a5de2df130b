package documents

import (
	"context"
)

// DocumentNote is a client-specific footer note for one document type and
// language. At most one active note exists per (client, type, language).
type DocumentNote struct {
	ClientID     int64  `db:"client_id" json:"clientId"`
	DocumentType string `db:"document_type" json:"documentType"`
	LanguageCode string `db:"language_code" json:"languageCode"`
	NoteContent  string `db:"note_content" json:"noteContent"`
	IsActive     bool   `db:"is_active" json:"isActive"`
}

// NoteRepository defines read access to client document notes.
type NoteRepository interface {
	// GetActiveNote returns the active note for the key, or NotFound.
	GetActiveNote(ctx context.Context, clientID int64, documentType, languageCode string) (*DocumentNote, error)
}

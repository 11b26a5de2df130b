package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"docukit/internal/core/apperror"
	"docukit/internal/domain/documents"
)

// NoteRepo implements documents.NoteRepository.
type NoteRepo struct {
	db *sql.DB
}

// NewNoteRepo creates a new NoteRepo.
func NewNoteRepo(db *sql.DB) *NoteRepo {
	return &NoteRepo{db: db}
}

var _ documents.NoteRepository = (*NoteRepo)(nil)

// GetActiveNote returns the active footer note for the exact
// (client, document type, language) key.
func (r *NoteRepo) GetActiveNote(ctx context.Context, clientID int64, documentType, languageCode string) (*documents.DocumentNote, error) {
	query, args, err := builder().
		Select("client_id", "document_type", "language_code", "note_content", "is_active").
		From("client_document_notes").
		Where(squirrel.Eq{
			"client_id":     clientID,
			"document_type": documentType,
			"language_code": languageCode,
			"is_active":     1,
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var note documents.DocumentNote
	if err := sqlscan.Get(ctx, r.db, &note, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewNotFound("document note", clientID).
				WithDetail("document_type", documentType).
				WithDetail("language_code", languageCode)
		}
		return nil, fmt.Errorf("get active note: %w", err)
	}
	return &note, nil
}

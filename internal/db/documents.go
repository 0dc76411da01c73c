package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-studio/internal/types"
)

// ErrDocumentNotFound is returned when no stored document matches the ID.
var ErrDocumentNotFound = errors.New("document not found")

// Schema:
//
//	CREATE TABLE documents (
//	    id             UUID PRIMARY KEY DEFAULT gen_random_uuid(),
//	    title          TEXT NOT NULL,
//	    schema_version TEXT NOT NULL,
//	    content        JSONB NOT NULL,
//	    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
//	    updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);

// CreateDocument stores a new enveloped document and returns its ID.
func (db *DB) CreateDocument(ctx context.Context, title string, env *types.Envelope) (uuid.UUID, error) {
	content, err := json.Marshal(env)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal envelope: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO documents (title, schema_version, content)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		title, env.Extensions.SchemaVersion, content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create document: %w", err)
	}
	return id, nil
}

// UpdateDocument replaces the stored envelope for an existing document.
func (db *DB) UpdateDocument(ctx context.Context, id uuid.UUID, title string, env *types.Envelope) error {
	content, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal envelope: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE documents
		 SET title = $1, schema_version = $2, content = $3, updated_at = NOW()
		 WHERE id = $4`,
		title, env.Extensions.SchemaVersion, content, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update document %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

// GetDocument loads one stored document row including its envelope content.
func (db *DB) GetDocument(ctx context.Context, id uuid.UUID) (*DocumentRecord, error) {
	var rec DocumentRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, title, schema_version, content, created_at, updated_at
		 FROM documents WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Title, &rec.SchemaVersion, &rec.Content, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document %s: %w", id, err)
	}
	return &rec, nil
}

// ListDocuments returns summaries of all stored documents, newest first.
func (db *DB) ListDocuments(ctx context.Context) ([]DocumentSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, schema_version, created_at, updated_at
		 FROM documents ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	summaries := []DocumentSummary{}
	for rows.Next() {
		var s DocumentSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.SchemaVersion, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate document rows: %w", err)
	}
	return summaries, nil
}

// DeleteDocument removes a stored document.
func (db *DB) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

// Envelope decodes the stored content of a document record.
func (rec *DocumentRecord) Envelope() (*types.Envelope, error) {
	var env types.Envelope
	if err := json.Unmarshal(rec.Content, &env); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored envelope: %w", err)
	}
	return &env, nil
}

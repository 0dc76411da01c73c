package db

import (
	"time"

	"github.com/google/uuid"
)

// DocumentRecord is one stored document row. Content holds the serialized
// envelope; the document is wrapped at save and unwrapped at load.
type DocumentRecord struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	SchemaVersion string    `json:"schema_version"`
	Content       []byte    `json:"content"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DocumentSummary is a listing row without the document content.
type DocumentSummary struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	SchemaVersion string    `json:"schema_version"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

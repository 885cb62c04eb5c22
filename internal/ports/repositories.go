package ports

import (
	"github.com/taskpanel/core/internal/domain/entities"
)

// Document is the sole unit of durable state: every category and task in one
// JSON value, persisted under one well-known storage key.
type Document struct {
	Categories []entities.TaskCategory `json:"categories"`
	Tasks      []entities.Task         `json:"tasks"`
}

// EmptyDocument returns the shape the store self-heals to when nothing is
// persisted yet. The slices are non-nil so the document round-trips as
// "[]", never "null".
func EmptyDocument() Document {
	return Document{
		Categories: []entities.TaskCategory{},
		Tasks:      []entities.Task{},
	}
}

// DocumentStore defines the interface for the durable key-value store holding
// the document. There is no partial-update operation: every mutation is a
// read-modify-write of the whole document, which is acceptable only because
// a single process owns the store.
type DocumentStore interface {
	// Initialize writes the empty-shape document if none exists yet.
	// Idempotent; safe to call on every start.
	Initialize() error
	// Read returns the full parsed document. A missing or unparsable store
	// yields the empty shape, never an error.
	Read() (Document, error)
	// Write serializes and persists the document, replacing prior content
	// atomically from the caller's perspective.
	Write(doc Document) error
}

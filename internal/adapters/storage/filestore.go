// Package storage provides the file-backed implementation of the document
// store: the whole task/category state as one JSON document under one
// well-known file, the way the original widget keeps it under one local
// storage key.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/taskpanel/core/internal/infrastructure/logger"
	"github.com/taskpanel/core/internal/ports"
)

// FileStore implements the DocumentStore interface over an afero filesystem.
// Tests run it on an in-memory filesystem; production uses the OS one.
type FileStore struct {
	fs     afero.Fs
	path   string
	logger *logger.Logger
}

// NewFileStore creates a file store persisting the document at path.
func NewFileStore(fs afero.Fs, path string, log *logger.Logger) *FileStore {
	return &FileStore{
		fs:     fs,
		path:   path,
		logger: log.WithComponent("filestore"),
	}
}

// Initialize writes the empty-shape document if nothing is stored yet.
// Idempotent; safe to call on every process start.
func (s *FileStore) Initialize() error {
	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return fmt.Errorf("check document file: %w", err)
	}
	if exists {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage directory: %w", err)
		}
	}

	s.logger.Infow("Initializing empty document", "path", s.path)
	return s.Write(ports.EmptyDocument())
}

// Read returns the full parsed document. A missing or corrupt file self-heals
// to the empty shape: the store is a cache of convenience, not a shared
// source of truth, so propagating a parse fault would only break the caller.
func (s *FileStore) Read() (ports.Document, error) {
	raw, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ports.EmptyDocument(), nil
		}
		return ports.Document{}, fmt.Errorf("read document file: %w", err)
	}

	var doc ports.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.logger.Warnw("Stored document is unparsable, treating as empty", "path", s.path, "error", err)
		return ports.EmptyDocument(), nil
	}

	empty := ports.EmptyDocument()
	if doc.Categories == nil {
		doc.Categories = empty.Categories
	}
	if doc.Tasks == nil {
		doc.Tasks = empty.Tasks
	}
	return doc, nil
}

// Write serializes and persists the document. The temp-file-and-rename dance
// keeps the replacement atomic from the caller's perspective.
func (s *FileStore) Write(doc ports.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	tmp, err := afero.TempFile(s.fs, filepath.Dir(s.path), ".taskpanel-*")
	if err != nil {
		return fmt.Errorf("create temp document file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		s.fs.Remove(tmpName)
		return fmt.Errorf("write temp document file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("close temp document file: %w", err)
	}

	if err := s.fs.Rename(tmpName, s.path); err != nil {
		s.fs.Remove(tmpName)
		return fmt.Errorf("replace document file: %w", err)
	}

	return nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskpanel/core/internal/domain/entities"
	"github.com/taskpanel/core/internal/ports"
)

// CategoryService handles category data access operations
type CategoryService struct {
	*deps
}

var _ ports.CategoryService = (*CategoryService)(nil)

// GetAllData returns a snapshot of the whole persisted document.
func (s *CategoryService) GetAllData(ctx context.Context) (ports.Document, error) {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Read()
	s.metrics.RecordOperation("get_all_data", err)
	if err != nil {
		return ports.Document{}, fmt.Errorf("failed to read document: %w", err)
	}

	return doc, nil
}

// GetCategories returns all categories in store order.
func (s *CategoryService) GetCategories(ctx context.Context) ([]entities.TaskCategory, error) {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Read()
	s.metrics.RecordOperation("get_categories", err)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return doc.Categories, nil
}

// GetCategoryByID returns the category or ErrCategoryNotFound. A missing id
// is a routine outcome, not a fault.
func (s *CategoryService) GetCategoryByID(ctx context.Context, id string) (*entities.TaskCategory, error) {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Read()
	s.metrics.RecordOperation("get_category", err)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	for _, category := range doc.Categories {
		if category.ID == id {
			found := category
			return &found, nil
		}
	}

	return nil, entities.ErrCategoryNotFound
}

// CreateCategory assigns a fresh id, stamps the creation time, appends and
// persists. Returns the created category.
func (s *CategoryService) CreateCategory(ctx context.Context, req ports.CreateCategoryRequest) (*entities.TaskCategory, error) {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()

	category := entities.TaskCategory{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Icon:      req.Icon,
		CreatedAt: time.Now(),
	}

	if err := category.Validate(); err != nil {
		s.metrics.RecordOperation("create_category", err)
		return nil, fmt.Errorf("invalid category: %w", err)
	}

	doc, err := s.store.Read()
	if err != nil {
		s.metrics.RecordOperation("create_category", err)
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	doc.Categories = append(doc.Categories, category)

	if err := s.store.Write(doc); err != nil {
		s.metrics.RecordOperation("create_category", err)
		return nil, fmt.Errorf("failed to persist category: %w", err)
	}

	s.metrics.RecordOperation("create_category", nil)
	s.metrics.ObserveDocument(doc)
	s.logger.Infow("Category created successfully", "category_id", category.ID, "name", category.Name)

	return &category, nil
}

// UpdateCategory merges the patch onto the existing record: set fields
// overwrite, nil fields keep their prior value. Returns ErrCategoryNotFound
// when the id does not exist.
func (s *CategoryService) UpdateCategory(ctx context.Context, id string, req ports.UpdateCategoryRequest) (*entities.TaskCategory, error) {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Read()
	if err != nil {
		s.metrics.RecordOperation("update_category", err)
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	for i := range doc.Categories {
		if doc.Categories[i].ID != id {
			continue
		}

		category := doc.Categories[i]
		if req.Name != nil {
			category.Name = *req.Name
		}
		if req.Icon != nil {
			category.Icon = *req.Icon
		}

		if err := category.Validate(); err != nil {
			s.metrics.RecordOperation("update_category", err)
			return nil, fmt.Errorf("invalid category: %w", err)
		}

		doc.Categories[i] = category
		if err := s.store.Write(doc); err != nil {
			s.metrics.RecordOperation("update_category", err)
			return nil, fmt.Errorf("failed to persist category: %w", err)
		}

		s.metrics.RecordOperation("update_category", nil)
		s.logger.Infow("Category updated successfully", "category_id", id)
		return &category, nil
	}

	s.metrics.RecordOperation("update_category", entities.ErrCategoryNotFound)
	s.logger.Debugw("Category to update not found", "category_id", id)
	return nil, entities.ErrCategoryNotFound
}

// DeleteCategory removes the matching record. Deleting an absent id is a
// no-op, and tasks referencing the category keep their dangling categoryId;
// the display layer treats an unresolvable reference as "no category".
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Read()
	if err != nil {
		s.metrics.RecordOperation("delete_category", err)
		return fmt.Errorf("failed to read document: %w", err)
	}

	kept := doc.Categories[:0]
	removed := false
	for _, category := range doc.Categories {
		if category.ID == id {
			removed = true
			continue
		}
		kept = append(kept, category)
	}

	if !removed {
		s.metrics.RecordOperation("delete_category", nil)
		return nil
	}

	doc.Categories = kept
	if err := s.store.Write(doc); err != nil {
		s.metrics.RecordOperation("delete_category", err)
		return fmt.Errorf("failed to persist deletion: %w", err)
	}

	s.metrics.RecordOperation("delete_category", nil)
	s.metrics.ObserveDocument(doc)
	s.logger.Infow("Category deleted successfully", "category_id", id)

	return nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskpanel/core/internal/domain/entities"
	"github.com/taskpanel/core/internal/ports"
)

// TaskService handles task data access operations
type TaskService struct {
	*deps
}

var _ ports.TaskService = (*TaskService)(nil)

// GetTasks returns all tasks in store order.
func (s *TaskService) GetTasks(ctx context.Context) ([]entities.Task, error) {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Read()
	s.metrics.RecordOperation("get_tasks", err)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return doc.Tasks, nil
}

// GetTaskByID returns the task or ErrTaskNotFound.
func (s *TaskService) GetTaskByID(ctx context.Context, id string) (*entities.Task, error) {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Read()
	s.metrics.RecordOperation("get_task", err)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	for _, task := range doc.Tasks {
		if task.ID == id {
			found := task
			return &found, nil
		}
	}

	return nil, entities.ErrTaskNotFound
}

// CreateTask assigns a fresh id, stamps the timestamps and defaults
// (in-progress, not archived, empty sub-task list), appends and persists.
func (s *TaskService) CreateTask(ctx context.Context, req ports.CreateTaskRequest) (*entities.Task, error) {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	task := entities.Task{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Type:        req.Type,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CategoryID:  req.CategoryID,
		SubTasks:    normalizeSubTasks(req.SubTasks),
		Status:      entities.StatusInProgress,
		Priority:    req.Priority,
		Description: req.Description,
		IsArchived:  false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		s.metrics.RecordOperation("create_task", err)
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	doc, err := s.store.Read()
	if err != nil {
		s.metrics.RecordOperation("create_task", err)
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	doc.Tasks = append(doc.Tasks, task)

	if err := s.store.Write(doc); err != nil {
		s.metrics.RecordOperation("create_task", err)
		return nil, fmt.Errorf("failed to persist task: %w", err)
	}

	s.metrics.RecordOperation("create_task", nil)
	s.metrics.ObserveDocument(doc)
	s.logger.Infow("Task created successfully", "task_id", task.ID, "name", task.Name, "type", task.Type)

	return &task, nil
}

// UpdateTask merges the patch onto the existing record and restamps
// UpdatedAt. Set fields overwrite, nil fields keep their prior value, and
// SubTasks is replaced wholesale, never deep-merged. A patch carrying an
// invalid enum value is rejected before anything is written.
func (s *TaskService) UpdateTask(ctx context.Context, id string, req ports.UpdateTaskRequest) (*entities.Task, error) {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Read()
	if err != nil {
		s.metrics.RecordOperation("update_task", err)
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	for i := range doc.Tasks {
		if doc.Tasks[i].ID != id {
			continue
		}

		task := doc.Tasks[i]
		applyTaskPatch(&task, req)
		task.UpdatedAt = time.Now()

		if err := task.Validate(); err != nil {
			s.metrics.RecordOperation("update_task", err)
			return nil, fmt.Errorf("invalid task patch: %w", err)
		}

		doc.Tasks[i] = task
		if err := s.store.Write(doc); err != nil {
			s.metrics.RecordOperation("update_task", err)
			return nil, fmt.Errorf("failed to persist task: %w", err)
		}

		s.metrics.RecordOperation("update_task", nil)
		s.metrics.ObserveDocument(doc)
		s.logger.Infow("Task updated successfully", "task_id", id)
		return &task, nil
	}

	s.metrics.RecordOperation("update_task", entities.ErrTaskNotFound)
	s.logger.Debugw("Task to update not found", "task_id", id)
	return nil, entities.ErrTaskNotFound
}

// DeleteTask removes the matching record and returns it, so the caller can
// show its name in a confirmation. Returns ErrTaskNotFound when absent.
func (s *TaskService) DeleteTask(ctx context.Context, id string) (*entities.Task, error) {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Read()
	if err != nil {
		s.metrics.RecordOperation("delete_task", err)
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	for i := range doc.Tasks {
		if doc.Tasks[i].ID != id {
			continue
		}

		removed := doc.Tasks[i]
		doc.Tasks = append(doc.Tasks[:i], doc.Tasks[i+1:]...)

		if err := s.store.Write(doc); err != nil {
			s.metrics.RecordOperation("delete_task", err)
			return nil, fmt.Errorf("failed to persist deletion: %w", err)
		}

		s.metrics.RecordOperation("delete_task", nil)
		s.metrics.ObserveDocument(doc)
		s.logger.Infow("Task deleted successfully", "task_id", id, "name", removed.Name)
		return &removed, nil
	}

	s.metrics.RecordOperation("delete_task", entities.ErrTaskNotFound)
	return nil, entities.ErrTaskNotFound
}

// ArchiveTask soft-removes the task from active views: IsArchived is set and
// ArchivedAt stamped while the status stays frozen. Archiving an already
// archived task is rejected with ErrTaskArchived.
func (s *TaskService) ArchiveTask(ctx context.Context, id string) (*entities.Task, error) {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Read()
	if err != nil {
		s.metrics.RecordOperation("archive_task", err)
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	for i := range doc.Tasks {
		if doc.Tasks[i].ID != id {
			continue
		}

		task := doc.Tasks[i]
		if task.IsArchived {
			s.metrics.RecordOperation("archive_task", entities.ErrTaskArchived)
			return nil, entities.ErrTaskArchived
		}

		now := time.Now()
		task.IsArchived = true
		task.ArchivedAt = &now
		task.UpdatedAt = now

		doc.Tasks[i] = task
		if err := s.store.Write(doc); err != nil {
			s.metrics.RecordOperation("archive_task", err)
			return nil, fmt.Errorf("failed to persist task: %w", err)
		}

		s.metrics.RecordOperation("archive_task", nil)
		s.logger.Infow("Task archived successfully", "task_id", id)
		return &task, nil
	}

	s.metrics.RecordOperation("archive_task", entities.ErrTaskNotFound)
	return nil, entities.ErrTaskNotFound
}

// RestoreTask brings an archived task back to the active set: the archive
// state is cleared, the status resets to in-progress, and a main task's
// deadline window is shifted forward to start now while keeping its original
// duration. Daily tasks keep their time-of-day window untouched.
func (s *TaskService) RestoreTask(ctx context.Context, id string) (*entities.Task, error) {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Read()
	if err != nil {
		s.metrics.RecordOperation("restore_task", err)
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	for i := range doc.Tasks {
		if doc.Tasks[i].ID != id {
			continue
		}

		task := doc.Tasks[i]
		if !task.IsArchived {
			s.metrics.RecordOperation("restore_task", entities.ErrTaskNotArchived)
			return nil, entities.ErrTaskNotArchived
		}

		now := time.Now()
		if duration := task.Duration(); duration > 0 {
			task.StartDate = now.Format(time.RFC3339)
			task.EndDate = now.Add(duration).Format(time.RFC3339)
		}
		task.IsArchived = false
		task.ArchivedAt = nil
		task.Status = entities.StatusInProgress
		task.UpdatedAt = now

		doc.Tasks[i] = task
		if err := s.store.Write(doc); err != nil {
			s.metrics.RecordOperation("restore_task", err)
			return nil, fmt.Errorf("failed to persist task: %w", err)
		}

		s.metrics.RecordOperation("restore_task", nil)
		s.logger.Infow("Task restored successfully", "task_id", id)
		return &task, nil
	}

	s.metrics.RecordOperation("restore_task", entities.ErrTaskNotFound)
	return nil, entities.ErrTaskNotFound
}

// applyTaskPatch copies the set patch fields onto the task.
func applyTaskPatch(task *entities.Task, req ports.UpdateTaskRequest) {
	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Type != nil {
		task.Type = *req.Type
	}
	if req.StartDate != nil {
		task.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		task.EndDate = *req.EndDate
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			task.CategoryID = nil
		} else {
			categoryID := *req.CategoryID
			task.CategoryID = &categoryID
		}
	}
	if req.SubTasks != nil {
		task.SubTasks = normalizeSubTasks(*req.SubTasks)
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
}

// normalizeSubTasks copies the incoming list and fills in missing sub-task
// ids. A nil list becomes an empty one so the document round-trips as "[]".
func normalizeSubTasks(subTasks []entities.SubTask) []entities.SubTask {
	out := make([]entities.SubTask, len(subTasks))
	copy(out, subTasks)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = "subtask-" + uuid.NewString()
		}
	}
	return out
}

package entities

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// Common errors
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrTaskArchived     = errors.New("task is already archived")
	ErrTaskNotArchived  = errors.New("task is not archived")
	ErrInvalidType      = errors.New("invalid task type")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrInvalidPriority  = errors.New("invalid task priority")
	ErrArchiveMismatch  = errors.New("archive flag and archive timestamp disagree")
)

// Enums and types. The underlying values are the persisted wire strings.
type TaskType string

const (
	TypeMain  TaskType = "Główne"
	TypeDaily TaskType = "Dzienne"
)

type TaskStatus string

const (
	StatusInProgress TaskStatus = "W trakcie"
	StatusCompleted  TaskStatus = "Zrealizowano"
	StatusAbandoned  TaskStatus = "Porzucone"
)

type TaskPriority string

const (
	PriorityLow      TaskPriority = "Niski"
	PriorityMedium   TaskPriority = "Średni"
	PriorityHigh     TaskPriority = "Wysoki"
	PriorityVeryHigh TaskPriority = "Bardzo Wysoki"
)

// AllDay is the sentinel a daily task carries instead of a time-of-day window.
const AllDay = "Cały dzień"

// MaxDescriptionLength is the advisory ceiling for task descriptions.
const MaxDescriptionLength = 500

// TaskCategory groups tasks under a named icon
type TaskCategory struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubTask is a checklist item owned entirely by one task. It has no
// independent lifecycle; it is created, mutated and removed only through
// a task update.
type SubTask struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	StartDate   *string `json:"startDate"`
	IsCompleted bool    `json:"isCompleted"`
}

// Task is either a one-off "main" task with absolute start/end timestamps or
// a recurring "daily" task whose dates are time-of-day strings (or AllDay).
// StartDate and EndDate therefore stay strings; CreatedAt, UpdatedAt and
// ArchivedAt are always real timestamps marshaled as RFC 3339.
type Task struct {
	ID          string       `json:"id"`
	Name        string       `json:"name" validate:"required"`
	Type        TaskType     `json:"type"`
	StartDate   string       `json:"startDate"`
	EndDate     string       `json:"endDate"`
	CategoryID  *string      `json:"categoryId"`
	SubTasks    []SubTask    `json:"subTasks"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	Description string       `json:"description" validate:"max=500"`
	IsArchived  bool         `json:"isArchived"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	ArchivedAt  *time.Time   `json:"archivedAt"`
}

var validate = validator.New()

func (tt TaskType) IsValid() bool {
	switch tt {
	case TypeMain, TypeDaily:
		return true
	}
	return false
}

func (ts TaskStatus) IsValid() bool {
	switch ts {
	case StatusInProgress, StatusCompleted, StatusAbandoned:
		return true
	}
	return false
}

func (tp TaskPriority) IsValid() bool {
	switch tp {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityVeryHigh:
		return true
	}
	return false
}

// Rank maps the priority to its position in the strict total order
// LOW(1) < MEDIUM(2) < HIGH(3) < VERY_HIGH(4). Unknown priorities rank 0.
func (tp TaskPriority) Rank() int {
	switch tp {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityVeryHigh:
		return 4
	}
	return 0
}

// DisplayName returns the label the UI shows for the priority.
func (tp TaskPriority) DisplayName() string {
	return string(tp) + " piorytet"
}

// DisplayName returns the label the UI shows for the status.
func (ts TaskStatus) DisplayName() string {
	return string(ts)
}

// DisplayName returns the label the UI shows for the type.
func (tt TaskType) DisplayName() string {
	return string(tt)
}

// Validate rejects a category whose required fields are missing.
func (c *TaskCategory) Validate() error {
	return validate.Struct(c)
}

// Validate rejects a task whose enum fields fall outside their closed sets
// or whose archive flag disagrees with its archive timestamp.
func (t *Task) Validate() error {
	if err := validate.Struct(t); err != nil {
		return err
	}
	if !t.Type.IsValid() {
		return ErrInvalidType
	}
	if !t.Status.IsValid() {
		return ErrInvalidStatus
	}
	if !t.Priority.IsValid() {
		return ErrInvalidPriority
	}
	if t.IsArchived != (t.ArchivedAt != nil) {
		return ErrArchiveMismatch
	}
	return nil
}

// Business logic methods for Task

// IsMain reports whether the task carries absolute start/end timestamps.
func (t *Task) IsMain() bool {
	return t.Type == TypeMain
}

// IsAllDay reports whether a daily task spans the whole day.
func (t *Task) IsAllDay() bool {
	return t.Type == TypeDaily && t.StartDate == AllDay
}

// Window returns the task's absolute start and end timestamps. Only main
// tasks have them; daily tasks report ok == false.
func (t *Task) Window() (start, end time.Time, ok bool) {
	if !t.IsMain() {
		return time.Time{}, time.Time{}, false
	}
	start, errStart := time.Parse(time.RFC3339, t.StartDate)
	end, errEnd := time.Parse(time.RFC3339, t.EndDate)
	if errStart != nil || errEnd != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// Duration returns the length of a main task's deadline window.
func (t *Task) Duration() time.Duration {
	start, end, ok := t.Window()
	if !ok {
		return 0
	}
	return end.Sub(start)
}

package ports

import (
	"context"
	"time"

	"github.com/taskpanel/core/internal/domain/entities"
)

// CategoryService interface for category data access operations
type CategoryService interface {
	GetAllData(ctx context.Context) (Document, error)
	GetCategories(ctx context.Context) ([]entities.TaskCategory, error)
	GetCategoryByID(ctx context.Context, id string) (*entities.TaskCategory, error)
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*entities.TaskCategory, error)
	UpdateCategory(ctx context.Context, id string, req UpdateCategoryRequest) (*entities.TaskCategory, error)
	DeleteCategory(ctx context.Context, id string) error
}

// TaskService interface for task data access operations
type TaskService interface {
	GetTasks(ctx context.Context) ([]entities.Task, error)
	GetTaskByID(ctx context.Context, id string) (*entities.Task, error)
	CreateTask(ctx context.Context, req CreateTaskRequest) (*entities.Task, error)
	UpdateTask(ctx context.Context, id string, req UpdateTaskRequest) (*entities.Task, error)
	DeleteTask(ctx context.Context, id string) (*entities.Task, error)
	ArchiveTask(ctx context.Context, id string) (*entities.Task, error)
	RestoreTask(ctx context.Context, id string) (*entities.Task, error)
}

// StatsService interface for the aggregate statistics shown on the main panel
type StatsService interface {
	Snapshot(ctx context.Context) (*StatsSnapshot, error)
}

// CreateCategoryRequest carries the fields a caller provides for a new
// category; id and creation timestamp are assigned by the service.
type CreateCategoryRequest struct {
	Name string `validate:"required"`
	Icon string
}

// UpdateCategoryRequest is a shallow patch: nil fields keep their prior
// value, set fields overwrite.
type UpdateCategoryRequest struct {
	Name *string
	Icon *string
}

// CreateTaskRequest carries the fields a caller provides for a new task.
// Status defaults to in-progress and the task starts unarchived.
type CreateTaskRequest struct {
	Name        string `validate:"required"`
	Type        entities.TaskType
	StartDate   string
	EndDate     string
	CategoryID  *string
	SubTasks    []entities.SubTask
	Priority    entities.TaskPriority
	Description string `validate:"max=500"`
}

// UpdateTaskRequest is a shallow patch: nil fields keep their prior value,
// set fields overwrite. SubTasks is replaced wholesale, never deep-merged.
// Setting CategoryID to a pointer at "" detaches the task from its category.
type UpdateTaskRequest struct {
	Name        *string
	Type        *entities.TaskType
	StartDate   *string
	EndDate     *string
	CategoryID  *string
	SubTasks    *[]entities.SubTask
	Status      *entities.TaskStatus
	Priority    *entities.TaskPriority
	Description *string
}

// StatusSlice is one pie-chart segment: tasks in one status, with the count's
// rounded share of all tasks.
type StatusSlice struct {
	Status  entities.TaskStatus
	Count   int
	Percent int
	Label   string
	Color   string
}

// StatsSnapshot aggregates the counters the main panel renders.
type StatsSnapshot struct {
	TotalTasks      int
	MainTasks       int
	DailyTasks      int
	ArchivedTasks   int
	TotalCategories int
	ByStatus        []StatusSlice
	TimeToEndOfDay  time.Duration
	GeneratedAt     time.Time
}

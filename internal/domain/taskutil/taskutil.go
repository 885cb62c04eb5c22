// Package taskutil holds the pure derived-data functions computed from
// entities already loaded through the data access services. Nothing here
// touches the document store.
package taskutil

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/taskpanel/core/internal/domain/entities"
)

// Style-classification tokens consumed by the rendering layer.
const (
	StatusClassInProgress = "task-status--in-progress"
	StatusClassCompleted  = "task-status--completed"
	StatusClassDeleted    = "task-status--deleted"

	PriorityClassLow      = "task-priority--low"
	PriorityClassMedium   = "task-priority--medium"
	PriorityClassHigh     = "task-priority--high"
	PriorityClassVeryHigh = "task-priority--very-high"
)

// PriorityRank returns the task's position in the fixed priority order, 1-4.
func PriorityRank(t entities.Task) int {
	return t.Priority.Rank()
}

// SortByPriorityDesc returns the tasks ordered most-important first. The sort
// is stable; ties keep their original relative order. The input is not
// modified.
func SortByPriorityDesc(tasks []entities.Task) []entities.Task {
	out := append([]entities.Task(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() > out[j].Priority.Rank()
	})
	return out
}

// SortByPriorityAsc is the reverse ordering of SortByPriorityDesc.
func SortByPriorityAsc(tasks []entities.Task) []entities.Task {
	out := append([]entities.Task(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	return out
}

// PercentOfCompletedSubTasks returns the share of completed sub-tasks as the
// integer nearest the true percentage. A task without sub-tasks reports 0.
func PercentOfCompletedSubTasks(t entities.Task) int {
	total := len(t.SubTasks)
	if total == 0 {
		return 0
	}
	completed := 0
	for _, st := range t.SubTasks {
		if st.IsCompleted {
			completed++
		}
	}
	return int(math.Round(float64(completed) * 100 / float64(total)))
}

// StatusClass maps the task status to its style token.
func StatusClass(t entities.Task) string {
	switch t.Status {
	case entities.StatusCompleted:
		return StatusClassCompleted
	case entities.StatusAbandoned:
		return StatusClassDeleted
	default:
		return StatusClassInProgress
	}
}

// PriorityClass maps the task priority to its style token.
func PriorityClass(t entities.Task) string {
	switch t.Priority {
	case entities.PriorityVeryHigh:
		return PriorityClassVeryHigh
	case entities.PriorityHigh:
		return PriorityClassHigh
	case entities.PriorityMedium:
		return PriorityClassMedium
	default:
		return PriorityClassLow
	}
}

// FormatTimeWindow renders the task's time-of-day window. Daily tasks yield
// the all-day label, a single start time, or "start - end"; main tasks yield
// the 24-hour time of their deadline.
func FormatTimeWindow(t entities.Task) string {
	if t.IsMain() {
		return HoursAndMinutes(t.EndDate)
	}
	if t.StartDate == entities.AllDay {
		return entities.AllDay
	}
	start := HoursAndMinutes(t.StartDate)
	end := HoursAndMinutes(t.EndDate)
	if end == "" || end == start {
		return start
	}
	return start + " - " + end
}

// HoursAndMinutes extracts a 24-hour HH:MM from either an RFC 3339 timestamp
// or a bare time-of-day string. Anything unparsable comes back unchanged.
func HoursAndMinutes(date string) string {
	if date == "" {
		return ""
	}
	if ts, err := time.Parse(time.RFC3339, date); err == nil {
		return ts.Format("15:04")
	}
	if _, err := time.Parse("15:04", date); err == nil {
		return date
	}
	return date
}

// DeadlineTime resolves the absolute moment a task's window closes: the end
// timestamp for main tasks, end of the current day for daily ones.
func DeadlineTime(t entities.Task, now time.Time) time.Time {
	if _, end, ok := t.Window(); ok {
		return end
	}
	return EndOfDay(now)
}

// DeadlineCountdown returns how much time remains until the task's deadline.
// Negative for overdue tasks.
func DeadlineCountdown(t entities.Task, now time.Time) time.Duration {
	return DeadlineTime(t, now).Sub(now)
}

// EndOfDay returns local midnight following now.
func EndOfDay(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
}

// TimeToEndOfDay feeds the end-of-day countdown widget.
func TimeToEndOfDay(now time.Time) time.Duration {
	return EndOfDay(now).Sub(now)
}

// FilterCriterion names one of the fixed task filters.
type FilterCriterion string

const (
	FilterImportant FilterCriterion = "only-important"
	FilterCompleted FilterCriterion = "only-completed"
	FilterActive    FilterCriterion = "only-active"
)

// SortCriterion names one of the fixed task orderings.
type SortCriterion string

const (
	SortNameAsc      SortCriterion = "name-asc"
	SortNameDesc     SortCriterion = "name-desc"
	SortCreatedAsc   SortCriterion = "created-asc"
	SortCreatedDesc  SortCriterion = "created-desc"
	SortDeadlineAsc  SortCriterion = "deadline-asc"
	SortDeadlineDesc SortCriterion = "deadline-desc"
	SortPriorityAsc  SortCriterion = "priority-asc"
	SortPriorityDesc SortCriterion = "priority-desc"
)

// FilterBy applies one of the named filters. An unrecognized criterion keeps
// every task.
func FilterBy(criterion FilterCriterion, tasks []entities.Task) []entities.Task {
	var keep func(entities.Task) bool

	switch criterion {
	case FilterImportant:
		keep = func(t entities.Task) bool { return t.Priority.Rank() >= 3 }
	case FilterCompleted:
		keep = func(t entities.Task) bool { return t.Status == entities.StatusCompleted }
	case FilterActive:
		keep = func(t entities.Task) bool { return !t.IsArchived }
	default:
		return append([]entities.Task(nil), tasks...)
	}

	out := make([]entities.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// SortBy applies one of the named orderings. An unrecognized criterion falls
// back to priority-descending, the default display order.
func SortBy(criterion SortCriterion, tasks []entities.Task) []entities.Task {
	out := append([]entities.Task(nil), tasks...)

	var less func(a, b entities.Task) bool
	switch criterion {
	case SortNameAsc:
		less = func(a, b entities.Task) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case SortNameDesc:
		less = func(a, b entities.Task) bool { return strings.ToLower(a.Name) > strings.ToLower(b.Name) }
	case SortCreatedAsc:
		less = func(a, b entities.Task) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortCreatedDesc:
		less = func(a, b entities.Task) bool { return a.CreatedAt.After(b.CreatedAt) }
	case SortDeadlineAsc:
		now := time.Now()
		less = func(a, b entities.Task) bool { return DeadlineTime(a, now).Before(DeadlineTime(b, now)) }
	case SortDeadlineDesc:
		now := time.Now()
		less = func(a, b entities.Task) bool { return DeadlineTime(a, now).After(DeadlineTime(b, now)) }
	case SortPriorityAsc:
		less = func(a, b entities.Task) bool { return a.Priority.Rank() < b.Priority.Rank() }
	default:
		less = func(a, b entities.Task) bool { return a.Priority.Rank() > b.Priority.Rank() }
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/taskpanel/core/internal/domain/entities"
	"github.com/taskpanel/core/internal/domain/taskutil"
	"github.com/taskpanel/core/internal/ports"
)

// StatsService computes the aggregate statistics the main panel renders:
// the status pie chart, the per-type counters and the end-of-day countdown.
type StatsService struct {
	*deps
}

var _ ports.StatsService = (*StatsService)(nil)

// Pie chart segment colors, one per status.
var statusColors = map[entities.TaskStatus]string{
	entities.StatusCompleted:  "#00c821",
	entities.StatusAbandoned:  "#e74f4f",
	entities.StatusInProgress: "#fc921f",
}

// Pie chart segment labels, the past-participle forms the chart legend uses.
var statusLabels = map[entities.TaskStatus]string{
	entities.StatusCompleted:  "Zrealizowane",
	entities.StatusAbandoned:  "Porzucone",
	entities.StatusInProgress: "W trakcie",
}

// Snapshot aggregates the current document into the panel counters.
func (s *StatsService) Snapshot(ctx context.Context) (*ports.StatsSnapshot, error) {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Read()
	s.metrics.RecordOperation("stats_snapshot", err)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	now := time.Now()
	snapshot := &ports.StatsSnapshot{
		TotalTasks:      len(doc.Tasks),
		TotalCategories: len(doc.Categories),
		TimeToEndOfDay:  taskutil.TimeToEndOfDay(now),
		GeneratedAt:     now,
	}

	statusCounts := map[entities.TaskStatus]int{}
	for _, task := range doc.Tasks {
		statusCounts[task.Status]++
		if task.IsArchived {
			snapshot.ArchivedTasks++
		}
		if task.IsMain() {
			snapshot.MainTasks++
		} else {
			snapshot.DailyTasks++
		}
	}

	for _, status := range []entities.TaskStatus{
		entities.StatusCompleted,
		entities.StatusAbandoned,
		entities.StatusInProgress,
	} {
		count := statusCounts[status]
		snapshot.ByStatus = append(snapshot.ByStatus, ports.StatusSlice{
			Status:  status,
			Count:   count,
			Percent: percentOf(count, snapshot.TotalTasks),
			Label:   fmt.Sprintf("%s(%d)", statusLabels[status], count),
			Color:   statusColors[status],
		})
	}

	return snapshot, nil
}

// percentOf rounds count's share of total to the nearest integer; an empty
// total yields 0 instead of dividing by zero.
func percentOf(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) * 100 / float64(total)))
}

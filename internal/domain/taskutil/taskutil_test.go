package taskutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskpanel/core/internal/domain/entities"
)

func taskWithPriority(name string, priority entities.TaskPriority) entities.Task {
	return entities.Task{Name: name, Priority: priority}
}

func TestSortByPriorityDesc(t *testing.T) {
	tasks := []entities.Task{
		taskWithPriority("a", entities.PriorityLow),
		taskWithPriority("b", entities.PriorityVeryHigh),
		taskWithPriority("c", entities.PriorityMedium),
	}

	sorted := SortByPriorityDesc(tasks)

	require.Len(t, sorted, 3)
	assert.Equal(t, "b", sorted[0].Name)
	assert.Equal(t, "c", sorted[1].Name)
	assert.Equal(t, "a", sorted[2].Name)

	// Input order untouched.
	assert.Equal(t, "a", tasks[0].Name)
}

func TestSortByPriorityDescIsStable(t *testing.T) {
	tasks := []entities.Task{
		taskWithPriority("first", entities.PriorityHigh),
		taskWithPriority("second", entities.PriorityHigh),
		taskWithPriority("third", entities.PriorityHigh),
	}

	sorted := SortByPriorityDesc(tasks)

	assert.Equal(t, "first", sorted[0].Name)
	assert.Equal(t, "second", sorted[1].Name)
	assert.Equal(t, "third", sorted[2].Name)
}

func TestSortByPriorityAsc(t *testing.T) {
	tasks := []entities.Task{
		taskWithPriority("b", entities.PriorityVeryHigh),
		taskWithPriority("a", entities.PriorityLow),
	}

	sorted := SortByPriorityAsc(tasks)

	assert.Equal(t, "a", sorted[0].Name)
	assert.Equal(t, "b", sorted[1].Name)
}

func TestPercentOfCompletedSubTasks(t *testing.T) {
	tests := []struct {
		name     string
		subTasks []entities.SubTask
		want     int
	}{
		{"no sub-tasks", nil, 0},
		{"none completed", []entities.SubTask{{}, {}}, 0},
		{"all completed", []entities.SubTask{{IsCompleted: true}, {IsCompleted: true}}, 100},
		{"one of three rounds to 33", []entities.SubTask{{IsCompleted: true}, {}, {}}, 33},
		{"two of three rounds to 67", []entities.SubTask{{IsCompleted: true}, {IsCompleted: true}, {}}, 67},
		{"half", []entities.SubTask{{IsCompleted: true}, {}}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := entities.Task{SubTasks: tt.subTasks}
			assert.Equal(t, tt.want, PercentOfCompletedSubTasks(task))
		})
	}
}

func TestStatusClass(t *testing.T) {
	assert.Equal(t, StatusClassCompleted, StatusClass(entities.Task{Status: entities.StatusCompleted}))
	assert.Equal(t, StatusClassDeleted, StatusClass(entities.Task{Status: entities.StatusAbandoned}))
	assert.Equal(t, StatusClassInProgress, StatusClass(entities.Task{Status: entities.StatusInProgress}))
}

func TestPriorityClass(t *testing.T) {
	assert.Equal(t, PriorityClassVeryHigh, PriorityClass(entities.Task{Priority: entities.PriorityVeryHigh}))
	assert.Equal(t, PriorityClassHigh, PriorityClass(entities.Task{Priority: entities.PriorityHigh}))
	assert.Equal(t, PriorityClassMedium, PriorityClass(entities.Task{Priority: entities.PriorityMedium}))
	assert.Equal(t, PriorityClassLow, PriorityClass(entities.Task{Priority: entities.PriorityLow}))
}

func TestFormatTimeWindow(t *testing.T) {
	deadline := time.Date(2026, 3, 14, 17, 30, 0, 0, time.Local)

	tests := []struct {
		name string
		task entities.Task
		want string
	}{
		{
			"main task shows deadline time",
			entities.Task{Type: entities.TypeMain, EndDate: deadline.Format(time.RFC3339)},
			"17:30",
		},
		{
			"all-day daily task shows the sentinel",
			entities.Task{Type: entities.TypeDaily, StartDate: entities.AllDay},
			entities.AllDay,
		},
		{
			"daily task with only a start shows it alone",
			entities.Task{Type: entities.TypeDaily, StartDate: "09:00"},
			"09:00",
		},
		{
			"daily task with a range shows both ends",
			entities.Task{Type: entities.TypeDaily, StartDate: "09:00", EndDate: "09:30"},
			"09:00 - 09:30",
		},
		{
			"identical ends collapse to one",
			entities.Task{Type: entities.TypeDaily, StartDate: "09:00", EndDate: "09:00"},
			"09:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimeWindow(tt.task))
		})
	}
}

func TestHoursAndMinutes(t *testing.T) {
	ts := time.Date(2026, 3, 14, 8, 5, 0, 0, time.Local)
	assert.Equal(t, "08:05", HoursAndMinutes(ts.Format(time.RFC3339)))
	assert.Equal(t, "14:00", HoursAndMinutes("14:00"))
	assert.Equal(t, "", HoursAndMinutes(""))
	assert.Equal(t, entities.AllDay, HoursAndMinutes(entities.AllDay))
}

func TestDeadlineTime(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)

	t.Run("main task uses its end timestamp", func(t *testing.T) {
		end := now.Add(5 * time.Hour)
		task := entities.Task{
			Type:      entities.TypeMain,
			StartDate: now.Format(time.RFC3339),
			EndDate:   end.Format(time.RFC3339),
		}
		assert.Equal(t, 5*time.Hour, DeadlineCountdown(task, now))
	})

	t.Run("daily task uses end of day", func(t *testing.T) {
		task := entities.Task{Type: entities.TypeDaily, StartDate: entities.AllDay}
		assert.Equal(t, 14*time.Hour, DeadlineCountdown(task, now))
	})
}

func TestEndOfDay(t *testing.T) {
	now := time.Date(2026, 3, 14, 23, 59, 0, 0, time.Local)
	end := EndOfDay(now)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local), end)
	assert.Equal(t, time.Minute, TimeToEndOfDay(now))
}

func TestFilterBy(t *testing.T) {
	tasks := []entities.Task{
		{Name: "important", Priority: entities.PriorityVeryHigh, Status: entities.StatusInProgress},
		{Name: "routine", Priority: entities.PriorityLow, Status: entities.StatusCompleted},
		{Name: "archived", Priority: entities.PriorityHigh, Status: entities.StatusInProgress, IsArchived: true},
	}

	t.Run("only-important keeps rank three and up", func(t *testing.T) {
		filtered := FilterBy(FilterImportant, tasks)
		require.Len(t, filtered, 2)
		assert.Equal(t, "important", filtered[0].Name)
		assert.Equal(t, "archived", filtered[1].Name)
	})

	t.Run("only-completed", func(t *testing.T) {
		filtered := FilterBy(FilterCompleted, tasks)
		require.Len(t, filtered, 1)
		assert.Equal(t, "routine", filtered[0].Name)
	})

	t.Run("only-active drops archived tasks", func(t *testing.T) {
		filtered := FilterBy(FilterActive, tasks)
		require.Len(t, filtered, 2)
		assert.Equal(t, "important", filtered[0].Name)
		assert.Equal(t, "routine", filtered[1].Name)
	})

	t.Run("unknown criterion keeps everything", func(t *testing.T) {
		filtered := FilterBy("only-blue", tasks)
		assert.Len(t, filtered, 3)
	})
}

func TestSortBy(t *testing.T) {
	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.Local)
	tasks := []entities.Task{
		{Name: "Banan", Priority: entities.PriorityLow, CreatedAt: created.Add(48 * time.Hour)},
		{Name: "ananas", Priority: entities.PriorityVeryHigh, CreatedAt: created},
		{Name: "Cytryna", Priority: entities.PriorityMedium, CreatedAt: created.Add(24 * time.Hour)},
	}

	names := func(sorted []entities.Task) []string {
		out := make([]string, len(sorted))
		for i, task := range sorted {
			out[i] = task.Name
		}
		return out
	}

	t.Run("name ordering is case insensitive", func(t *testing.T) {
		assert.Equal(t, []string{"ananas", "Banan", "Cytryna"}, names(SortBy(SortNameAsc, tasks)))
		assert.Equal(t, []string{"Cytryna", "Banan", "ananas"}, names(SortBy(SortNameDesc, tasks)))
	})

	t.Run("creation ordering", func(t *testing.T) {
		assert.Equal(t, []string{"ananas", "Cytryna", "Banan"}, names(SortBy(SortCreatedAsc, tasks)))
		assert.Equal(t, []string{"Banan", "Cytryna", "ananas"}, names(SortBy(SortCreatedDesc, tasks)))
	})

	t.Run("priority ordering", func(t *testing.T) {
		assert.Equal(t, []string{"Banan", "Cytryna", "ananas"}, names(SortBy(SortPriorityAsc, tasks)))
		assert.Equal(t, []string{"ananas", "Cytryna", "Banan"}, names(SortBy(SortPriorityDesc, tasks)))
	})

	t.Run("unknown criterion falls back to priority descending", func(t *testing.T) {
		assert.Equal(t, []string{"ananas", "Cytryna", "Banan"}, names(SortBy("by-color", tasks)))
	})

	t.Run("input is not modified", func(t *testing.T) {
		SortBy(SortNameAsc, tasks)
		assert.Equal(t, "Banan", tasks[0].Name)
	})
}

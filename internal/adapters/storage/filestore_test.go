package storage

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskpanel/core/internal/domain/entities"
	"github.com/taskpanel/core/internal/infrastructure/logger"
	"github.com/taskpanel/core/internal/ports"
)

func newTestStore(t *testing.T) (*FileStore, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return NewFileStore(fs, "data/user-private-tasks-data.json", logger.NewNop()), fs
}

func TestInitializeWritesEmptyDocument(t *testing.T) {
	store, fs := newTestStore(t)

	require.NoError(t, store.Initialize())

	exists, err := afero.Exists(fs, "data/user-private-tasks-data.json")
	require.NoError(t, err)
	assert.True(t, exists)

	doc, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, doc.Categories)
	assert.Empty(t, doc.Tasks)
	assert.NotNil(t, doc.Categories)
	assert.NotNil(t, doc.Tasks)
}

func TestInitializeIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Initialize())

	doc := ports.EmptyDocument()
	doc.Categories = append(doc.Categories, entities.TaskCategory{ID: "cat-1", Name: "Dom"})
	require.NoError(t, store.Write(doc))

	// A second initialize must not wipe stored data.
	require.NoError(t, store.Initialize())

	got, err := store.Read()
	require.NoError(t, err)
	assert.Len(t, got.Categories, 1)
}

func TestWriteReadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Initialize())

	now := time.Now().Truncate(time.Second)
	categoryID := "cat-1"
	doc := ports.EmptyDocument()
	doc.Categories = append(doc.Categories, entities.TaskCategory{
		ID: categoryID, Name: "Praca", Icon: "fa-briefcase", CreatedAt: now,
	})
	doc.Tasks = append(doc.Tasks, entities.Task{
		ID:         "task-1",
		Name:       "Przegląd skrzynki",
		Type:       entities.TypeDaily,
		StartDate:  "09:00",
		EndDate:    "09:30",
		CategoryID: &categoryID,
		SubTasks:   []entities.SubTask{{ID: "subtask-1", Name: "Inbox zero"}},
		Status:     entities.StatusInProgress,
		Priority:   entities.PriorityMedium,
		CreatedAt:  now,
		UpdatedAt:  now,
	})

	require.NoError(t, store.Write(doc))

	got, err := store.Read()
	require.NoError(t, err)
	require.Len(t, got.Tasks, 1)
	assert.Equal(t, doc.Tasks[0].Name, got.Tasks[0].Name)
	require.NotNil(t, got.Tasks[0].CategoryID)
	assert.Equal(t, categoryID, *got.Tasks[0].CategoryID)
	require.Len(t, got.Tasks[0].SubTasks, 1)
	assert.Equal(t, "Inbox zero", got.Tasks[0].SubTasks[0].Name)
	assert.True(t, now.Equal(got.Tasks[0].CreatedAt))
}

func TestReadMissingFileReturnsEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	doc, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, doc.Categories)
	assert.Empty(t, doc.Tasks)
}

func TestReadCorruptFileSelfHeals(t *testing.T) {
	store, fs := newTestStore(t)
	require.NoError(t, afero.WriteFile(fs, "data/user-private-tasks-data.json", []byte("{not json"), 0o644))

	doc, err := store.Read()
	require.NoError(t, err)
	assert.Empty(t, doc.Categories)
	assert.Empty(t, doc.Tasks)
}

func TestReadFillsNilSlices(t *testing.T) {
	store, fs := newTestStore(t)
	require.NoError(t, afero.WriteFile(fs, "data/user-private-tasks-data.json", []byte(`{}`), 0o644))

	doc, err := store.Read()
	require.NoError(t, err)
	assert.NotNil(t, doc.Categories)
	assert.NotNil(t, doc.Tasks)
}

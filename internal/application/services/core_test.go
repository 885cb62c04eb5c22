package services

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/taskpanel/core/internal/adapters/storage"
	"github.com/taskpanel/core/internal/infrastructure/logger"
)

// newTestCore wires a facade against an in-memory document store with zero
// simulated latency and metrics disabled.
func newTestCore(t *testing.T) *Core {
	t.Helper()

	log := logger.NewNop()
	store := storage.NewFileStore(afero.NewMemMapFs(), "tasks.json", log)
	require.NoError(t, store.Initialize())

	return NewCore(store, log, nil, 0)
}

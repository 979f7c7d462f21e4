package sqlstore_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/sqlstore"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/phrazzld/todo-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*sqlstore.SQLTaskStore, func()) {
	t.Helper()
	db, dialect := testdb.NewSQLite(t)
	closeDB := func() { require.NoError(t, db.Close()) }
	return sqlstore.NewSQLTaskStore(db, dialect, nil), closeDB
}

func TestSQLTaskStore_CreateAndGet(t *testing.T) {
	t.Parallel()
	s, _ := newStore(t)
	ctx := context.Background()

	task := &domain.Task{Title: "water plants", Completed: true}
	require.NoError(t, s.Create(ctx, task))
	assert.Positive(t, task.ID, "store should assign a positive ID")

	got, err := s.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, got)
}

func TestSQLTaskStore_CreateAssignsDistinctIDs(t *testing.T) {
	t.Parallel()
	s, _ := newStore(t)
	ctx := context.Background()

	first := &domain.Task{Title: "first"}
	second := &domain.Task{Title: "second"}
	require.NoError(t, s.Create(ctx, first))
	require.NoError(t, s.Create(ctx, second))

	assert.Greater(t, second.ID, first.ID)
}

func TestSQLTaskStore_CreateRejectsEmptyTitle(t *testing.T) {
	t.Parallel()
	s, _ := newStore(t)

	err := s.Create(context.Background(), &domain.Task{Title: ""})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.ErrorIs(t, err, domain.ErrEmptyTaskTitle)
}

func TestSQLTaskStore_List(t *testing.T) {
	t.Parallel()
	s, _ := newStore(t)
	ctx := context.Background()

	empty, err := s.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	const n = 5
	for i := 0; i < n; i++ {
		require.NoError(t, s.Create(ctx, &domain.Task{Title: fmt.Sprintf("task %d", i), Completed: i%2 == 0}))
	}

	tasks, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, n)
	for i, task := range tasks {
		assert.Equal(t, fmt.Sprintf("task %d", i), task.Title, "tasks should be ordered by ID")
		assert.Equal(t, i%2 == 0, task.Completed)
	}
}

func TestSQLTaskStore_Update(t *testing.T) {
	t.Parallel()
	s, _ := newStore(t)
	ctx := context.Background()

	task := &domain.Task{Title: "draft"}
	require.NoError(t, s.Create(ctx, task))

	updated := &domain.Task{ID: task.ID, Title: "final", Completed: true}
	require.NoError(t, s.Update(ctx, updated))

	got, err := s.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	// Rewriting identical values still counts as a match.
	require.NoError(t, s.Update(ctx, updated))
}

func TestSQLTaskStore_UpdateMissing(t *testing.T) {
	t.Parallel()
	s, _ := newStore(t)

	err := s.Update(context.Background(), &domain.Task{ID: 999, Title: "ghost"})

	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestSQLTaskStore_UpdateRejectsEmptyTitle(t *testing.T) {
	t.Parallel()
	s, _ := newStore(t)
	ctx := context.Background()

	task := &domain.Task{Title: "keep"}
	require.NoError(t, s.Create(ctx, task))

	err := s.Update(ctx, &domain.Task{ID: task.ID})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)

	got, err := s.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "keep", got.Title)
}

func TestSQLTaskStore_DeleteTwice(t *testing.T) {
	t.Parallel()
	s, _ := newStore(t)
	ctx := context.Background()

	task := &domain.Task{Title: "temporary"}
	require.NoError(t, s.Create(ctx, task))

	require.NoError(t, s.Delete(ctx, task.ID))
	assert.ErrorIs(t, s.Delete(ctx, task.ID), store.ErrTaskNotFound)

	_, err := s.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

func TestSQLTaskStore_GetMissing(t *testing.T) {
	t.Parallel()
	s, _ := newStore(t)

	got, err := s.GetByID(context.Background(), 42)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
}

// TestSQLTaskStore_StoreUnavailable checks the degradation rules once the
// database can no longer be reached.
func TestSQLTaskStore_StoreUnavailable(t *testing.T) {
	t.Parallel()
	s, closeDB := newStore(t)
	ctx := context.Background()

	task := &domain.Task{Title: "before outage"}
	require.NoError(t, s.Create(ctx, task))

	closeDB()

	tasks, err := s.List(ctx)
	require.NoError(t, err, "list should degrade to an empty result")
	assert.Empty(t, tasks)

	_, err = s.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
	var storeErr *store.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "get", storeErr.Operation)
	assert.Equal(t, task.ID, storeErr.ID)

	err = s.Update(ctx, &domain.Task{ID: task.ID, Title: "after outage"})
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	err = s.Delete(ctx, task.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	err = s.Create(ctx, &domain.Task{Title: "during outage"})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrUnavailable)
	assert.NotErrorIs(t, err, store.ErrNotFound)
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "create", storeErr.Operation)
}

func TestNewSQLTaskStore_NilDB(t *testing.T) {
	assert.Panics(t, func() {
		sqlstore.NewSQLTaskStore(nil, sqlstore.SQLite, nil)
	})
}

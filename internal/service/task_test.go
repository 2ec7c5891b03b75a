package service

import (
	"context"
	"testing"

	"taskdeck/internal/domain"
	"taskdeck/internal/repository"

	"github.com/stretchr/testify/require"
)

func TestTaskCreateAndList(t *testing.T) {
	svc := NewTaskService(repository.NewMemTaskStore())
	ctx := context.Background()

	task, err := svc.Create(ctx, 1, "buy milk")
	require.NoError(t, err)
	require.Equal(t, "buy milk", task.Title)
	require.False(t, task.Completed)
	require.NotZero(t, task.ID)

	tasks, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, task.ID, tasks[0].ID)

	// other owners see nothing
	other, err := svc.List(ctx, 2)
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestTaskCreateValidation(t *testing.T) {
	svc := NewTaskService(repository.NewMemTaskStore())
	ctx := context.Background()

	for _, title := range []string{"", "   "} {
		_, err := svc.Create(ctx, 1, title)
		require.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestTaskUpdate(t *testing.T) {
	svc := NewTaskService(repository.NewMemTaskStore())
	ctx := context.Background()

	task, err := svc.Create(ctx, 1, "buy milk")
	require.NoError(t, err)

	completed := true
	updated, err := svc.Update(ctx, 1, task.ID, domain.TaskUpdate{Completed: &completed})
	require.NoError(t, err)
	require.True(t, updated.Completed)
	require.Equal(t, "buy milk", updated.Title, "title untouched by completion toggle")

	title := "buy oat milk"
	updated, err = svc.Update(ctx, 1, task.ID, domain.TaskUpdate{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "buy oat milk", updated.Title)
	require.True(t, updated.Completed, "completed untouched by title edit")
}

func TestTaskUpdateValidation(t *testing.T) {
	svc := NewTaskService(repository.NewMemTaskStore())
	ctx := context.Background()

	task, err := svc.Create(ctx, 1, "buy milk")
	require.NoError(t, err)

	_, err = svc.Update(ctx, 1, task.ID, domain.TaskUpdate{})
	require.ErrorIs(t, err, domain.ErrValidation)

	empty := "  "
	_, err = svc.Update(ctx, 1, task.ID, domain.TaskUpdate{Title: &empty})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestTaskOwnershipScoping(t *testing.T) {
	svc := NewTaskService(repository.NewMemTaskStore())
	ctx := context.Background()

	task, err := svc.Create(ctx, 1, "owner one's task")
	require.NoError(t, err)

	completed := true

	// a foreign-owned id and a nonexistent id are the same error
	_, errForeign := svc.Update(ctx, 2, task.ID, domain.TaskUpdate{Completed: &completed})
	require.ErrorIs(t, errForeign, domain.ErrNotFound)

	_, errMissing := svc.Update(ctx, 2, 99999, domain.TaskUpdate{Completed: &completed})
	require.ErrorIs(t, errMissing, domain.ErrNotFound)
	require.Equal(t, errForeign.Error(), errMissing.Error())

	require.ErrorIs(t, svc.Delete(ctx, 2, task.ID), domain.ErrNotFound)

	// owner still sees the task unchanged
	tasks, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.False(t, tasks[0].Completed)
}

func TestTaskDelete(t *testing.T) {
	svc := NewTaskService(repository.NewMemTaskStore())
	ctx := context.Background()

	task, err := svc.Create(ctx, 1, "buy milk")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 1, task.ID))

	tasks, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, tasks)

	require.ErrorIs(t, svc.Delete(ctx, 1, task.ID), domain.ErrNotFound)
}

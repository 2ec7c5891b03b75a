package service

import (
	"context"
	"strings"

	"taskdeck/internal/domain"
)

// TaskStore is the slice of the task store the service needs. Every method
// that touches an existing task takes the owner id; the store must treat a
// foreign-owned task exactly like a missing one.
type TaskStore interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error)
	Create(ctx context.Context, t *domain.Task) error
	Update(ctx context.Context, ownerID, id int64, upd domain.TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, ownerID, id int64) error
}

type TaskService struct {
	tasks TaskStore
}

func NewTaskService(tasks TaskStore) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) List(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	return s.tasks.ListByOwner(ctx, ownerID)
}

func (s *TaskService) Create(ctx context.Context, ownerID int64, title string) (*domain.Task, error) {
	if strings.TrimSpace(title) == "" {
		return nil, domain.Validationf("title is required")
	}

	t := &domain.Task{UserID: ownerID, Title: title, Completed: false}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) Update(ctx context.Context, ownerID, id int64, upd domain.TaskUpdate) (*domain.Task, error) {
	if upd.Empty() {
		return nil, domain.Validationf("nothing to update")
	}
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return nil, domain.Validationf("title cannot be empty")
	}
	return s.tasks.Update(ctx, ownerID, id, upd)
}

func (s *TaskService) Delete(ctx context.Context, ownerID, id int64) error {
	return s.tasks.Delete(ctx, ownerID, id)
}

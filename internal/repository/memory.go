package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"taskdeck/internal/domain"
)

// MemUserStore and MemTaskStore are in-memory implementations of the service
// store interfaces. They back the unit tests and let the services run without
// Postgres; they keep the same error contract as the pgx repositories.

type MemUserStore struct {
	mu     sync.Mutex
	byID   map[int64]*domain.User
	byName map[string]*domain.User
	seq    int64
}

func NewMemUserStore() *MemUserStore {
	return &MemUserStore{
		byID:   map[int64]*domain.User{},
		byName: map[string]*domain.User{},
	}
}

func (m *MemUserStore) Create(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byName[u.Username]; ok {
		return domain.ErrConflict
	}
	m.seq++
	u.ID = m.seq
	u.CreatedAt = time.Now()

	cp := *u
	m.byID[u.ID] = &cp
	m.byName[u.Username] = &cp
	return nil
}

func (m *MemUserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.byName[username]
	if !ok {
		return nil, domain.ErrBadCredentials
	}
	cp := *u
	return &cp, nil
}

func (m *MemUserStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type MemTaskStore struct {
	mu    sync.Mutex
	tasks map[int64]*domain.Task
	seq   int64
}

func NewMemTaskStore() *MemTaskStore {
	return &MemTaskStore{tasks: map[int64]*domain.Task{}}
}

func (m *MemTaskStore) ListByOwner(_ context.Context, ownerID int64) ([]domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := []domain.Task{}
	for _, t := range m.tasks {
		if t.UserID == ownerID {
			res = append(res, *t)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].ID < res[j].ID
		}
		return res[i].CreatedAt.Before(res[j].CreatedAt)
	})
	return res, nil
}

func (m *MemTaskStore) Create(_ context.Context, t *domain.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t.ID = m.seq
	t.CreatedAt = time.Now()

	cp := *t
	m.tasks[t.ID] = &cp
	return nil
}

func (m *MemTaskStore) Update(_ context.Context, ownerID, id int64, upd domain.TaskUpdate) (*domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[id]
	if !ok || t.UserID != ownerID {
		return nil, domain.ErrNotFound
	}
	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Completed != nil {
		t.Completed = *upd.Completed
	}
	cp := *t
	return &cp, nil
}

func (m *MemTaskStore) Delete(_ context.Context, ownerID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tasks[id]
	if !ok || t.UserID != ownerID {
		return domain.ErrNotFound
	}
	delete(m.tasks, id)
	return nil
}

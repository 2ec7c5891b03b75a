package repository

import (
	"context"
	"errors"

	"taskdeck/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListByOwner returns the owner's tasks ordered by creation time.
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, title, completed, created_at
		 FROM tasks
		 WHERE user_id = $1
		 ORDER BY created_at, id`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Completed, &t.CreatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO tasks (user_id, title, completed)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		t.UserID, t.Title, t.Completed,
	).Scan(&t.ID, &t.CreatedAt)
}

// Update applies the non-nil fields of upd to the task, but only when it is
// owned by ownerID. A nonexistent id and a foreign-owned id are both
// domain.ErrNotFound.
func (r *TaskRepository) Update(ctx context.Context, ownerID, id int64, upd domain.TaskUpdate) (*domain.Task, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE tasks
		 SET title = COALESCE($3, title), completed = COALESCE($4, completed)
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, title, completed, created_at`,
		id, ownerID, upd.Title, upd.Completed,
	)

	var t domain.Task
	if err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Completed, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, ownerID, id int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package domain

import "time"

type Task struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskUpdate carries the optional fields of a partial task update.
// A nil field is left untouched.
type TaskUpdate struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.Completed == nil
}

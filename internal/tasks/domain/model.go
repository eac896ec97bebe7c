package domain

import (
	"time"

	projects "github.com/taskboard-io/taskboard-backend/internal/projects/domain"
)

type Task struct {
	ID        int64           `json:"id"`
	ProjectID int64           `json:"project_id"`
	Title     string          `json:"title"`
	Status    projects.Status `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateTaskRequest carries the fields accepted on task creation. The parent
// project comes from the route, never from the body.
type CreateTaskRequest struct {
	Title  string
	Status string
}

// UpdateTaskRequest carries a partial update; nil fields are left untouched.
type UpdateTaskRequest struct {
	Title  *string
	Status *string
}

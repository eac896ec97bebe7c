package domain

import "time"

// Status is the lifecycle state shared by projects and tasks.
type Status string

const (
	StatusPending   Status = "pending"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

// Statuses lists every valid status value.
func Statuses() []string {
	return []string{string(StatusPending), string(StatusOngoing), string(StatusCompleted)}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusOngoing, StatusCompleted:
		return true
	}
	return false
}

type Project struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProjectRequest carries the fields accepted on project creation.
type CreateProjectRequest struct {
	Title       string
	Description string
	Status      string
}

// UpdateProjectRequest carries a partial update; nil fields are left untouched.
type UpdateProjectRequest struct {
	Title       *string
	Description *string
	Status      *string
}

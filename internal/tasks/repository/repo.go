package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	projects "github.com/taskboard-io/taskboard-backend/internal/projects/domain"
	"github.com/taskboard-io/taskboard-backend/internal/tasks/domain"
)

// TaskRepository provides persistence operations for tasks
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListByProject returns all tasks of a project in store order.
func (r *TaskRepository) ListByProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	const q = `
SELECT id, project_id, title, status, created_at, updated_at
FROM tasks
WHERE project_id = $1;
`
	return r.queryTasks(ctx, q, projectID)
}

// ListByProjectNewestFirst returns all tasks of a project ordered by creation
// time descending, id breaking ties for rows created in the same instant.
func (r *TaskRepository) ListByProjectNewestFirst(ctx context.Context, projectID int64) ([]domain.Task, error) {
	const q = `
SELECT id, project_id, title, status, created_at, updated_at
FROM tasks
WHERE project_id = $1
ORDER BY created_at DESC, id DESC;
`
	return r.queryTasks(ctx, q, projectID)
}

func (r *TaskRepository) queryTasks(ctx context.Context, q string, projectID int64) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, q, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Task, 0, 16)
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Create inserts a task under the given project.
func (r *TaskRepository) Create(ctx context.Context, projectID int64, title string, status projects.Status) (*domain.Task, error) {
	const q = `
INSERT INTO tasks (project_id, title, status)
VALUES ($1, $2, $3)
RETURNING id, project_id, title, status, created_at, updated_at;
`
	var t domain.Task
	err := r.db.QueryRowContext(ctx, q, projectID, title, status).
		Scan(&t.ID, &t.ProjectID, &t.Title, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return &t, nil
}

// GetByID returns a task only when it belongs to the given project.
func (r *TaskRepository) GetByID(ctx context.Context, projectID, taskID int64) (*domain.Task, error) {
	const q = `
SELECT id, project_id, title, status, created_at, updated_at
FROM tasks
WHERE project_id = $1 AND id = $2;
`
	var t domain.Task
	err := r.db.QueryRowContext(ctx, q, projectID, taskID).
		Scan(&t.ID, &t.ProjectID, &t.Title, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Update writes the full field set; callers merge partial input beforehand.
func (r *TaskRepository) Update(ctx context.Context, projectID, taskID int64, title string, status projects.Status) (*domain.Task, error) {
	const q = `
UPDATE tasks
SET title = $3, status = $4, updated_at = now()
WHERE project_id = $1 AND id = $2
RETURNING id, project_id, title, status, created_at, updated_at;
`
	var t domain.Task
	err := r.db.QueryRowContext(ctx, q, projectID, taskID, title, status).
		Scan(&t.ID, &t.ProjectID, &t.Title, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Delete removes a task scoped to its project.
func (r *TaskRepository) Delete(ctx context.Context, projectID, taskID int64) error {
	const q = `DELETE FROM tasks WHERE project_id = $1 AND id = $2;`

	result, err := r.db.ExecContext(ctx, q, projectID, taskID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

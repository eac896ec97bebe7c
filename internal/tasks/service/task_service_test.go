package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projects "github.com/taskboard-io/taskboard-backend/internal/projects/domain"
	projectrepo "github.com/taskboard-io/taskboard-backend/internal/projects/repository"
	"github.com/taskboard-io/taskboard-backend/internal/tasks/domain"
	"github.com/taskboard-io/taskboard-backend/internal/tasks/repository"
	"github.com/taskboard-io/taskboard-backend/internal/validation"
)

func setupService(t *testing.T) (*TaskService, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	svc := NewTaskService(repository.NewTaskRepository(db), projectrepo.NewProjectRepository(db))
	return svc, mock, db
}

func taskColumns() []string {
	return []string{"id", "project_id", "title", "status", "created_at", "updated_at"}
}

func expectProjectExists(mock sqlmock.Sqlmock, id int64, exists bool) {
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(exists))
}

func TestTaskService_Create_MissingProject(t *testing.T) {
	svc, mock, db := setupService(t)
	defer db.Close()

	expectProjectExists(mock, 42, false)

	_, err := svc.Create(context.Background(), 42, domain.CreateTaskRequest{
		Title:  "Design mockups",
		Status: "pending",
	})
	assert.ErrorIs(t, err, projects.ErrProjectNotFound)

	// Nothing may be inserted when the parent project is missing.
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskService_Create_Validation(t *testing.T) {
	svc, mock, db := setupService(t)
	defer db.Close()

	expectProjectExists(mock, 1, true)

	_, err := svc.Create(context.Background(), 1, domain.CreateTaskRequest{})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "title")
	assert.Contains(t, verrs, "status")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskService_Create_Persists(t *testing.T) {
	svc, mock, db := setupService(t)
	defer db.Close()

	now := time.Now()
	expectProjectExists(mock, 1, true)
	mock.ExpectQuery(`INSERT INTO tasks`).
		WithArgs(int64(1), "Design mockups", projects.StatusPending).
		WillReturnRows(sqlmock.NewRows(taskColumns()).
			AddRow(int64(10), int64(1), "Design mockups", "pending", now, now))

	task, err := svc.Create(context.Background(), 1, domain.CreateTaskRequest{
		Title:  "Design mockups",
		Status: "pending",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), task.ID)
	assert.Equal(t, int64(1), task.ProjectID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskService_Update_PartialMerge(t *testing.T) {
	svc, mock, db := setupService(t)
	defer db.Close()

	now := time.Now()
	status := "completed"

	expectProjectExists(mock, 1, true)
	mock.ExpectQuery(`SELECT id, project_id, title, status`).
		WithArgs(int64(1), int64(10)).
		WillReturnRows(sqlmock.NewRows(taskColumns()).
			AddRow(int64(10), int64(1), "Design mockups", "ongoing", now, now))
	mock.ExpectQuery(`UPDATE tasks`).
		WithArgs(int64(1), int64(10), "Design mockups", projects.StatusCompleted).
		WillReturnRows(sqlmock.NewRows(taskColumns()).
			AddRow(int64(10), int64(1), "Design mockups", "completed", now, now))

	task, err := svc.Update(context.Background(), 1, 10, domain.UpdateTaskRequest{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, "Design mockups", task.Title)
	assert.Equal(t, projects.StatusCompleted, task.Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskService_Update_TaskOutsideProject(t *testing.T) {
	svc, mock, db := setupService(t)
	defer db.Close()

	title := "New title"
	expectProjectExists(mock, 1, true)
	mock.ExpectQuery(`SELECT id, project_id, title, status`).
		WithArgs(int64(1), int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := svc.Update(context.Background(), 1, 99, domain.UpdateTaskRequest{Title: &title})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskService_Delete(t *testing.T) {
	svc, mock, db := setupService(t)
	defer db.Close()

	expectProjectExists(mock, 1, true)
	mock.ExpectExec(`DELETE FROM tasks`).
		WithArgs(int64(1), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.Delete(context.Background(), 1, 10))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskService_Summary(t *testing.T) {
	svc, mock, db := setupService(t)
	defer db.Close()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("counts and latest from newest-first snapshot", func(t *testing.T) {
		expectProjectExists(mock, 1, true)
		mock.ExpectQuery(`SELECT id, project_id, title, status`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(taskColumns()).
				AddRow(int64(3), int64(1), "Ship", "completed", base.Add(2*time.Minute), base).
				AddRow(int64(2), int64(1), "Build", "ongoing", base.Add(time.Minute), base).
				AddRow(int64(1), int64(1), "Plan", "pending", base, base))

		s, err := svc.Summary(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, 3, s.Total)
		assert.Equal(t, 1, s.Pending)
		assert.Equal(t, 1, s.Ongoing)
		assert.Equal(t, 1, s.Completed)
		assert.Equal(t, s.Total, s.Pending+s.Ongoing+s.Completed)

		require.Len(t, s.Latest, 3)
		assert.Equal(t, int64(3), s.Latest[0].ID)
		assert.Equal(t, int64(1), s.Latest[2].ID)
	})

	t.Run("missing project", func(t *testing.T) {
		expectProjectExists(mock, 404, false)

		_, err := svc.Summary(context.Background(), 404)
		assert.ErrorIs(t, err, projects.ErrProjectNotFound)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

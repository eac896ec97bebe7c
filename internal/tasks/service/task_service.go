package service

import (
	"context"

	projects "github.com/taskboard-io/taskboard-backend/internal/projects/domain"
	projectrepo "github.com/taskboard-io/taskboard-backend/internal/projects/repository"
	"github.com/taskboard-io/taskboard-backend/internal/tasks/domain"
	"github.com/taskboard-io/taskboard-backend/internal/tasks/repository"
	"github.com/taskboard-io/taskboard-backend/internal/validation"
)

// TaskService handles task business logic. Every operation is scoped to a
// parent project and checks that project first.
type TaskService struct {
	repo     *repository.TaskRepository
	projects *projectrepo.ProjectRepository
}

// NewTaskService creates a new task service
func NewTaskService(repo *repository.TaskRepository, projects *projectrepo.ProjectRepository) *TaskService {
	return &TaskService{
		repo:     repo,
		projects: projects,
	}
}

func (s *TaskService) requireProject(ctx context.Context, projectID int64) error {
	exists, err := s.projects.Exists(ctx, projectID)
	if err != nil {
		return err
	}
	if !exists {
		return projects.ErrProjectNotFound
	}
	return nil
}

// List returns all tasks of a project.
func (s *TaskService) List(ctx context.Context, projectID int64) ([]domain.Task, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.repo.ListByProject(ctx, projectID)
}

// Create validates the input and persists a task under the project.
func (s *TaskService) Create(ctx context.Context, projectID int64, req domain.CreateTaskRequest) (*domain.Task, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}

	verrs := validation.Errors{}
	validation.Required(verrs, "title", req.Title)
	validation.MaxLen(verrs, "title", req.Title, 255)
	validation.Required(verrs, "status", req.Status)
	if req.Status != "" {
		validation.OneOf(verrs, "status", req.Status, projects.Statuses()...)
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, projectID, req.Title, projects.Status(req.Status))
}

// Update applies a partial update to a task within its project.
func (s *TaskService) Update(ctx context.Context, projectID, taskID int64, req domain.UpdateTaskRequest) (*domain.Task, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, projectID, taskID)
	if err != nil {
		return nil, err
	}

	verrs := validation.Errors{}
	if req.Title != nil {
		validation.Required(verrs, "title", *req.Title)
		validation.MaxLen(verrs, "title", *req.Title, 255)
	}
	if req.Status != nil {
		validation.OneOf(verrs, "status", *req.Status, projects.Statuses()...)
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	title := current.Title
	status := current.Status
	if req.Title != nil {
		title = *req.Title
	}
	if req.Status != nil {
		status = projects.Status(*req.Status)
	}

	return s.repo.Update(ctx, projectID, taskID, title, status)
}

// Delete removes a task within its project.
func (s *TaskService) Delete(ctx context.Context, projectID, taskID int64) error {
	if err := s.requireProject(ctx, projectID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, projectID, taskID)
}

// Summary recomputes the project's task aggregate from a fresh snapshot on
// every call: counts per status plus the latest tasks, newest first.
func (s *TaskService) Summary(ctx context.Context, projectID int64) (*domain.Summary, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}

	tasks, err := s.repo.ListByProjectNewestFirst(ctx, projectID)
	if err != nil {
		return nil, err
	}

	summary := domain.Summarize(tasks)
	return &summary, nil
}

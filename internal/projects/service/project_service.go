package service

import (
	"context"

	"github.com/taskboard-io/taskboard-backend/internal/projects/domain"
	"github.com/taskboard-io/taskboard-backend/internal/projects/repository"
	"github.com/taskboard-io/taskboard-backend/internal/validation"
)

// ProjectService handles project-related business logic
type ProjectService struct {
	repo *repository.ProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		repo: repo,
	}
}

// List returns all projects
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}

// Create validates the input and persists a new project.
func (s *ProjectService) Create(ctx context.Context, req domain.CreateProjectRequest) (*domain.Project, error) {
	verrs := validation.Errors{}
	validation.Required(verrs, "title", req.Title)
	validation.MaxLen(verrs, "title", req.Title, 255)
	validation.Required(verrs, "description", req.Description)
	validation.Required(verrs, "status", req.Status)
	if req.Status != "" {
		validation.OneOf(verrs, "status", req.Status, domain.Statuses()...)
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, req.Title, req.Description, domain.Status(req.Status))
}

// Get returns a single project by id
func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial update: unsupplied fields keep their prior values,
// supplied fields are validated before anything is written.
func (s *ProjectService) Update(ctx context.Context, id int64, req domain.UpdateProjectRequest) (*domain.Project, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	verrs := validation.Errors{}
	if req.Title != nil {
		validation.Required(verrs, "title", *req.Title)
		validation.MaxLen(verrs, "title", *req.Title, 255)
	}
	if req.Description != nil {
		validation.Required(verrs, "description", *req.Description)
	}
	if req.Status != nil {
		validation.OneOf(verrs, "status", *req.Status, domain.Statuses()...)
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}

	title := current.Title
	description := current.Description
	status := current.Status
	if req.Title != nil {
		title = *req.Title
	}
	if req.Description != nil {
		description = *req.Description
	}
	if req.Status != nil {
		status = domain.Status(*req.Status)
	}

	return s.repo.Update(ctx, id, title, description, status)
}

// Delete removes a project and, by cascade, its tasks.
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

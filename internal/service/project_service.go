package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mimarfolio/internal/cache"
	"mimarfolio/internal/errors"
	"mimarfolio/internal/model"
	"mimarfolio/internal/repository"
)

const projectCachePrefix = "projects:"

// CreateProjectInput is the project creation payload.
type CreateProjectInput struct {
	Title       string `json:"title" validate:"required,min=1"`
	Description string `json:"description" validate:"required,min=1"`
	Location    string `json:"location" validate:"required,min=1"`
	Year        string `json:"year" validate:"required,min=1"`
	Category    string `json:"category" validate:"required,min=1"`
	Image       string `json:"image" validate:"required,min=1"`
	IsFeatured  bool   `json:"isFeatured"`
}

// UpdateProjectInput is the partial project update payload. Every field is
// optional, but a present field must satisfy the create constraints.
type UpdateProjectInput struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Location    *string `json:"location" validate:"omitempty,min=1"`
	Year        *string `json:"year" validate:"omitempty,min=1"`
	Category    *string `json:"category" validate:"omitempty,min=1"`
	Image       *string `json:"image" validate:"omitempty,min=1"`
	IsFeatured  *bool   `json:"isFeatured"`
}

// ProjectService handles portfolio project operations.
type ProjectService interface {
	List(ctx context.Context, filter repository.ProjectFilter) ([]model.Project, error)
	Get(ctx context.Context, id uint) (*model.Project, error)
	Create(ctx context.Context, in CreateProjectInput) (*model.Project, error)
	Update(ctx context.Context, id uint, in UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, id uint) error
}

type projectService struct {
	projects repository.ProjectRepository
	cache    *cache.Client
}

// NewProjectService creates a new project service.
func NewProjectService(projects repository.ProjectRepository, cacheClient *cache.Client) ProjectService {
	return &projectService{projects: projects, cache: cacheClient}
}

// List returns projects newest first. Results are cached per filter and the
// cache is invalidated by any mutation.
func (s *projectService) List(ctx context.Context, filter repository.ProjectFilter) ([]model.Project, error) {
	key := fmt.Sprintf("%slist:%v:%s:%d", projectCachePrefix, boolFilter(filter.Featured), filter.Category, filter.Limit)

	var cached []model.Project
	if hit, _ := s.cache.GetJSON(ctx, key, &cached); hit {
		return cached, nil
	}

	projects, err := s.projects.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	_ = s.cache.SetJSON(ctx, key, projects, cache.ListTTL)
	return projects, nil
}

func (s *projectService) Get(ctx context.Context, id uint) (*model.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return project, nil
}

func (s *projectService) Create(ctx context.Context, in CreateProjectInput) (*model.Project, error) {
	project := &model.Project{
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Year:        in.Year,
		Category:    in.Category,
		Image:       in.Image,
		IsFeatured:  in.IsFeatured,
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	_ = s.cache.InvalidatePrefix(ctx, projectCachePrefix)
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id uint, in UpdateProjectInput) (*model.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	if in.Title != nil {
		project.Title = *in.Title
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Location != nil {
		project.Location = *in.Location
	}
	if in.Year != nil {
		project.Year = *in.Year
	}
	if in.Category != nil {
		project.Category = *in.Category
	}
	if in.Image != nil {
		project.Image = *in.Image
	}
	if in.IsFeatured != nil {
		project.IsFeatured = *in.IsFeatured
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	_ = s.cache.InvalidatePrefix(ctx, projectCachePrefix)
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id uint) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrProjectNotFound
		}
		return fmt.Errorf("delete project: %w", err)
	}

	_ = s.cache.InvalidatePrefix(ctx, projectCachePrefix)
	return nil
}

// boolFilter renders an optional bool for cache keys.
func boolFilter(b *bool) string {
	if b == nil {
		return "any"
	}
	return fmt.Sprintf("%t", *b)
}

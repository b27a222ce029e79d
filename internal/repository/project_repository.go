package repository

import (
	"context"

	"gorm.io/gorm"

	"mimarfolio/internal/model"
)

// ProjectFilter narrows a project listing. Nil/zero fields mean
// "no restriction".
type ProjectFilter struct {
	Featured *bool
	Category string
	Limit    int
}

// ProjectRepository defines project persistence operations.
type ProjectRepository interface {
	List(ctx context.Context, filter ProjectFilter) ([]model.Project, error)
	FindByID(ctx context.Context, id uint) (*model.Project, error)
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// List returns projects newest first, optionally filtered and limited.
func (r *projectRepository) List(ctx context.Context, filter ProjectFilter) ([]model.Project, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.Featured != nil {
		q = q.Where("is_featured = ?", *filter.Featured)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var projects []model.Project
	if err := q.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) FindByID(ctx context.Context, id uint) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepository) Update(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete removes a project. Deleting a missing id surfaces
// gorm.ErrRecordNotFound rather than silently succeeding.
func (r *projectRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Project{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteAll removes every project. Used by the seed routine only.
func (r *projectRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Project{}).Error
}

func (r *projectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Project{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

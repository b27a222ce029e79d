package repository

import (
	"context"

	"gorm.io/gorm"

	"mimarfolio/internal/model"
)

// TeamMemberRepository defines team member persistence operations.
type TeamMemberRepository interface {
	List(ctx context.Context, filter ActiveFilter) ([]model.TeamMember, error)
	FindByID(ctx context.Context, id uint) (*model.TeamMember, error)
	Create(ctx context.Context, member *model.TeamMember) error
	Update(ctx context.Context, member *model.TeamMember) error
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

type teamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository.
func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepository {
	return &teamMemberRepository{db: db}
}

func (r *teamMemberRepository) List(ctx context.Context, filter ActiveFilter) ([]model.TeamMember, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.Active != nil {
		q = q.Where("is_active = ?", *filter.Active)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var members []model.TeamMember
	if err := q.Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *teamMemberRepository) FindByID(ctx context.Context, id uint) (*model.TeamMember, error) {
	var member model.TeamMember
	if err := r.db.WithContext(ctx).First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *teamMemberRepository) Create(ctx context.Context, member *model.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *teamMemberRepository) Update(ctx context.Context, member *model.TeamMember) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *teamMemberRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.TeamMember{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *teamMemberRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.TeamMember{}).Error
}

func (r *teamMemberRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.TeamMember{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

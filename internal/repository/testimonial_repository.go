package repository

import (
	"context"

	"gorm.io/gorm"

	"mimarfolio/internal/model"
)

// ActiveFilter narrows a listing to active rows and/or a result count.
// It is shared by the testimonial, service and team repositories.
type ActiveFilter struct {
	Active *bool
	Limit  int
}

// TestimonialRepository defines testimonial persistence operations.
type TestimonialRepository interface {
	List(ctx context.Context, filter ActiveFilter) ([]model.Testimonial, error)
	FindByID(ctx context.Context, id uint) (*model.Testimonial, error)
	Create(ctx context.Context, testimonial *model.Testimonial) error
	Update(ctx context.Context, testimonial *model.Testimonial) error
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

type testimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository creates a new testimonial repository.
func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) List(ctx context.Context, filter ActiveFilter) ([]model.Testimonial, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.Active != nil {
		q = q.Where("is_active = ?", *filter.Active)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var testimonials []model.Testimonial
	if err := q.Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *testimonialRepository) FindByID(ctx context.Context, id uint) (*model.Testimonial, error) {
	var testimonial model.Testimonial
	if err := r.db.WithContext(ctx).First(&testimonial, id).Error; err != nil {
		return nil, err
	}
	return &testimonial, nil
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial *model.Testimonial) error {
	return r.db.WithContext(ctx).Create(testimonial).Error
}

func (r *testimonialRepository) Update(ctx context.Context, testimonial *model.Testimonial) error {
	return r.db.WithContext(ctx).Save(testimonial).Error
}

func (r *testimonialRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Testimonial{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *testimonialRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Testimonial{}).Error
}

func (r *testimonialRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Testimonial{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

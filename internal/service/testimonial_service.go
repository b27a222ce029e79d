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

const testimonialCachePrefix = "testimonials:"

// CreateTestimonialInput is the testimonial creation payload. Rating must be
// between 1 and 5.
type CreateTestimonialInput struct {
	Name     string `json:"name" validate:"required,min=1"`
	Title    string `json:"title" validate:"required,min=1"`
	Content  string `json:"content" validate:"required,min=1"`
	Rating   int    `json:"rating" validate:"required,gte=1,lte=5"`
	Image    string `json:"image"`
	IsActive *bool  `json:"isActive"`
}

// UpdateTestimonialInput is the partial testimonial update payload.
type UpdateTestimonialInput struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Title    *string `json:"title" validate:"omitempty,min=1"`
	Content  *string `json:"content" validate:"omitempty,min=1"`
	Rating   *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Image    *string `json:"image"`
	IsActive *bool   `json:"isActive"`
}

// TestimonialService handles testimonial operations.
type TestimonialService interface {
	List(ctx context.Context, filter repository.ActiveFilter) ([]model.Testimonial, error)
	Create(ctx context.Context, in CreateTestimonialInput) (*model.Testimonial, error)
	Update(ctx context.Context, id uint, in UpdateTestimonialInput) (*model.Testimonial, error)
	Delete(ctx context.Context, id uint) error
}

type testimonialService struct {
	testimonials repository.TestimonialRepository
	cache        *cache.Client
}

// NewTestimonialService creates a new testimonial service.
func NewTestimonialService(testimonials repository.TestimonialRepository, cacheClient *cache.Client) TestimonialService {
	return &testimonialService{testimonials: testimonials, cache: cacheClient}
}

func (s *testimonialService) List(ctx context.Context, filter repository.ActiveFilter) ([]model.Testimonial, error) {
	key := fmt.Sprintf("%slist:%v:%d", testimonialCachePrefix, boolFilter(filter.Active), filter.Limit)

	var cached []model.Testimonial
	if hit, _ := s.cache.GetJSON(ctx, key, &cached); hit {
		return cached, nil
	}

	testimonials, err := s.testimonials.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}

	_ = s.cache.SetJSON(ctx, key, testimonials, cache.ListTTL)
	return testimonials, nil
}

func (s *testimonialService) Create(ctx context.Context, in CreateTestimonialInput) (*model.Testimonial, error) {
	testimonial := &model.Testimonial{
		Name:     in.Name,
		Title:    in.Title,
		Content:  in.Content,
		Rating:   in.Rating,
		Image:    in.Image,
		IsActive: true,
	}
	if in.IsActive != nil {
		testimonial.IsActive = *in.IsActive
	}

	if err := s.testimonials.Create(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}

	_ = s.cache.InvalidatePrefix(ctx, testimonialCachePrefix)
	return testimonial, nil
}

func (s *testimonialService) Update(ctx context.Context, id uint, in UpdateTestimonialInput) (*model.Testimonial, error) {
	testimonial, err := s.testimonials.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTestimonialNotFound
		}
		return nil, fmt.Errorf("find testimonial: %w", err)
	}

	if in.Name != nil {
		testimonial.Name = *in.Name
	}
	if in.Title != nil {
		testimonial.Title = *in.Title
	}
	if in.Content != nil {
		testimonial.Content = *in.Content
	}
	if in.Rating != nil {
		testimonial.Rating = *in.Rating
	}
	if in.Image != nil {
		testimonial.Image = *in.Image
	}
	if in.IsActive != nil {
		testimonial.IsActive = *in.IsActive
	}

	if err := s.testimonials.Update(ctx, testimonial); err != nil {
		return nil, fmt.Errorf("update testimonial: %w", err)
	}

	_ = s.cache.InvalidatePrefix(ctx, testimonialCachePrefix)
	return testimonial, nil
}

func (s *testimonialService) Delete(ctx context.Context, id uint) error {
	if err := s.testimonials.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrTestimonialNotFound
		}
		return fmt.Errorf("delete testimonial: %w", err)
	}

	_ = s.cache.InvalidatePrefix(ctx, testimonialCachePrefix)
	return nil
}

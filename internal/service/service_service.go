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

const serviceCachePrefix = "services:"

// CreateServiceInput is the service creation payload.
type CreateServiceInput struct {
	Title       string `json:"title" validate:"required,min=1"`
	Description string `json:"description" validate:"required,min=1"`
	Icon        string `json:"icon"`
	IsActive    *bool  `json:"isActive"`
}

// UpdateServiceInput is the partial service update payload.
type UpdateServiceInput struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Icon        *string `json:"icon"`
	IsActive    *bool   `json:"isActive"`
}

// ServiceService handles operations on the firm's service offerings.
type ServiceService interface {
	List(ctx context.Context, filter repository.ActiveFilter) ([]model.Service, error)
	Create(ctx context.Context, in CreateServiceInput) (*model.Service, error)
	Update(ctx context.Context, id uint, in UpdateServiceInput) (*model.Service, error)
	Delete(ctx context.Context, id uint) error
}

type serviceService struct {
	services repository.ServiceRepository
	cache    *cache.Client
}

// NewServiceService creates a new service service.
func NewServiceService(services repository.ServiceRepository, cacheClient *cache.Client) ServiceService {
	return &serviceService{services: services, cache: cacheClient}
}

func (s *serviceService) List(ctx context.Context, filter repository.ActiveFilter) ([]model.Service, error) {
	key := fmt.Sprintf("%slist:%v:%d", serviceCachePrefix, boolFilter(filter.Active), filter.Limit)

	var cached []model.Service
	if hit, _ := s.cache.GetJSON(ctx, key, &cached); hit {
		return cached, nil
	}

	services, err := s.services.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	_ = s.cache.SetJSON(ctx, key, services, cache.ListTTL)
	return services, nil
}

func (s *serviceService) Create(ctx context.Context, in CreateServiceInput) (*model.Service, error) {
	svc := &model.Service{
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		IsActive:    true,
	}
	if in.IsActive != nil {
		svc.IsActive = *in.IsActive
	}

	if err := s.services.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	_ = s.cache.InvalidatePrefix(ctx, serviceCachePrefix)
	return svc, nil
}

func (s *serviceService) Update(ctx context.Context, id uint, in UpdateServiceInput) (*model.Service, error) {
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrServiceNotFound
		}
		return nil, fmt.Errorf("find service: %w", err)
	}

	if in.Title != nil {
		svc.Title = *in.Title
	}
	if in.Description != nil {
		svc.Description = *in.Description
	}
	if in.Icon != nil {
		svc.Icon = *in.Icon
	}
	if in.IsActive != nil {
		svc.IsActive = *in.IsActive
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, fmt.Errorf("update service: %w", err)
	}

	_ = s.cache.InvalidatePrefix(ctx, serviceCachePrefix)
	return svc, nil
}

func (s *serviceService) Delete(ctx context.Context, id uint) error {
	if err := s.services.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrServiceNotFound
		}
		return fmt.Errorf("delete service: %w", err)
	}

	_ = s.cache.InvalidatePrefix(ctx, serviceCachePrefix)
	return nil
}

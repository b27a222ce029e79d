package repository

import (
	"context"

	"gorm.io/gorm"

	"mimarfolio/internal/model"
)

// ServiceRepository defines service persistence operations.
type ServiceRepository interface {
	List(ctx context.Context, filter ActiveFilter) ([]model.Service, error)
	FindByID(ctx context.Context, id uint) (*model.Service, error)
	Create(ctx context.Context, service *model.Service) error
	Update(ctx context.Context, service *model.Service) error
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) error
}

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository creates a new service repository.
func NewServiceRepository(db *gorm.DB) ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) List(ctx context.Context, filter ActiveFilter) ([]model.Service, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.Active != nil {
		q = q.Where("is_active = ?", *filter.Active)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var services []model.Service
	if err := q.Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id uint) (*model.Service, error) {
	var service model.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) Create(ctx context.Context, service *model.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *serviceRepository) Update(ctx context.Context, service *model.Service) error {
	return r.db.WithContext(ctx).Save(service).Error
}

func (r *serviceRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Service{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *serviceRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&model.Service{}).Error
}

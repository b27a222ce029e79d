package repository

import (
	"context"

	"gorm.io/gorm"

	"mimarfolio/internal/model"
)

// MessageFilter narrows a contact message listing.
type MessageFilter struct {
	Read  *bool
	Limit int
}

// ContactMessageRepository defines contact message persistence operations.
type ContactMessageRepository interface {
	List(ctx context.Context, filter MessageFilter) ([]model.ContactMessage, error)
	FindByID(ctx context.Context, id uint) (*model.ContactMessage, error)
	Create(ctx context.Context, message *model.ContactMessage) error
	Update(ctx context.Context, message *model.ContactMessage) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	CountUnread(ctx context.Context) (int64, error)
}

type contactMessageRepository struct {
	db *gorm.DB
}

// NewContactMessageRepository creates a new contact message repository.
func NewContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (r *contactMessageRepository) List(ctx context.Context, filter MessageFilter) ([]model.ContactMessage, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if filter.Read != nil {
		q = q.Where("is_read = ?", *filter.Read)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var messages []model.ContactMessage
	if err := q.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *contactMessageRepository) FindByID(ctx context.Context, id uint) (*model.ContactMessage, error) {
	var message model.ContactMessage
	if err := r.db.WithContext(ctx).First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *contactMessageRepository) Create(ctx context.Context, message *model.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *contactMessageRepository) Update(ctx context.Context, message *model.ContactMessage) error {
	return r.db.WithContext(ctx).Save(message).Error
}

func (r *contactMessageRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.ContactMessage{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *contactMessageRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.ContactMessage{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *contactMessageRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.ContactMessage{}).
		Where("is_read = ?", false).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

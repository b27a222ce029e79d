package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mimarfolio/internal/errors"
	"mimarfolio/internal/model"
	"mimarfolio/internal/repository"
)

// SubmitMessageInput is the public contact form payload.
type SubmitMessageInput struct {
	Name    string `json:"name" validate:"required,min=1"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required,min=10"`
}

// ContactService handles contact message intake and admin triage.
type ContactService interface {
	Submit(ctx context.Context, in SubmitMessageInput) (*model.ContactMessage, error)
	List(ctx context.Context, filter repository.MessageFilter) ([]model.ContactMessage, error)
	MarkRead(ctx context.Context, id uint) (*model.ContactMessage, error)
	Delete(ctx context.Context, id uint) error
}

type contactService struct {
	messages repository.ContactMessageRepository
}

// NewContactService creates a new contact service.
func NewContactService(messages repository.ContactMessageRepository) ContactService {
	return &contactService{messages: messages}
}

func (s *contactService) Submit(ctx context.Context, in SubmitMessageInput) (*model.ContactMessage, error) {
	message := &model.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}

	if err := s.messages.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}

func (s *contactService) List(ctx context.Context, filter repository.MessageFilter) ([]model.ContactMessage, error) {
	messages, err := s.messages.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}

// MarkRead flips IsRead to true. That is the only transition exposed; there
// is no way back to unread.
func (s *contactService) MarkRead(ctx context.Context, id uint) (*model.ContactMessage, error) {
	message, err := s.messages.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrMessageNotFound
		}
		return nil, fmt.Errorf("find message: %w", err)
	}

	message.IsRead = true
	if err := s.messages.Update(ctx, message); err != nil {
		return nil, fmt.Errorf("update message: %w", err)
	}
	return message, nil
}

func (s *contactService) Delete(ctx context.Context, id uint) error {
	if err := s.messages.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrMessageNotFound
		}
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"mimarfolio/internal/errors"
	"mimarfolio/internal/model"
	"mimarfolio/internal/repository"
)

// MockContactMessageRepository is a mock implementation of ContactMessageRepository.
type MockContactMessageRepository struct {
	mock.Mock
}

func (m *MockContactMessageRepository) List(ctx context.Context, filter repository.MessageFilter) ([]model.ContactMessage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ContactMessage), args.Error(1)
}

func (m *MockContactMessageRepository) FindByID(ctx context.Context, id uint) (*model.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactMessage), args.Error(1)
}

func (m *MockContactMessageRepository) Create(ctx context.Context, message *model.ContactMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockContactMessageRepository) Update(ctx context.Context, message *model.ContactMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockContactMessageRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactMessageRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContactMessageRepository) CountUnread(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestContactService_Submit(t *testing.T) {
	mockRepo := new(MockContactMessageRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ContactMessage")).Return(nil)

	svc := NewContactService(mockRepo)
	message, err := svc.Submit(context.Background(), SubmitMessageInput{
		Name:    "Ahmet Yılmaz",
		Email:   "ahmet@example.com",
		Subject: "Villa projesi",
		Message: "Yeni bir villa projesi hakkında bilgi almak istiyorum.",
	})

	assert.NoError(t, err)
	assert.NotNil(t, message)
	assert.Equal(t, "Ahmet Yılmaz", message.Name)
	assert.False(t, message.IsRead)
	mockRepo.AssertExpectations(t)
}

func TestContactService_MarkRead(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		setupMock     func(*MockContactMessageRepository)
		expectedError error
	}{
		{
			name: "marks unread message read",
			id:   1,
			setupMock: func(m *MockContactMessageRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.ContactMessage{ID: 1, IsRead: false}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.ContactMessage")).Return(nil)
			},
		},
		{
			name: "already read stays read",
			id:   2,
			setupMock: func(m *MockContactMessageRepository) {
				m.On("FindByID", mock.Anything, uint(2)).Return(&model.ContactMessage{ID: 2, IsRead: true}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.ContactMessage")).Return(nil)
			},
		},
		{
			name: "not found",
			id:   99,
			setupMock: func(m *MockContactMessageRepository) {
				m.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrMessageNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockContactMessageRepository)
			tt.setupMock(mockRepo)

			svc := NewContactService(mockRepo)
			message, err := svc.MarkRead(context.Background(), tt.id)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, message)
			} else {
				assert.NoError(t, err)
				assert.True(t, message.IsRead)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestContactService_Delete(t *testing.T) {
	mockRepo := new(MockContactMessageRepository)
	mockRepo.On("Delete", mock.Anything, uint(7)).Return(gorm.ErrRecordNotFound)

	svc := NewContactService(mockRepo)
	err := svc.Delete(context.Background(), 7)

	assert.Equal(t, errors.ErrMessageNotFound, err)
	mockRepo.AssertExpectations(t)
}

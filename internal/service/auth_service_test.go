package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mimarfolio/internal/auth"
	"mimarfolio/internal/errors"
	"mimarfolio/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		input         LoginInput
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "successful login",
			input: LoginInput{Email: "admin@mimarportfolyo.com", Password: "admin123"},
			setupMock: func(m *MockUserRepository) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
				m.On("FindByEmail", mock.Anything, "admin@mimarportfolyo.com").Return(&model.User{
					ID:           1,
					Email:        "admin@mimarportfolyo.com",
					Name:         "Admin",
					PasswordHash: string(hashedPassword),
					Role:         model.RoleAdmin,
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:  "unknown email",
			input: LoginInput{Email: "nobody@example.com", Password: "admin123"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:  "wrong password",
			input: LoginInput{Email: "admin@mimarportfolyo.com", Password: "wrong"},
			setupMock: func(m *MockUserRepository) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
				m.On("FindByEmail", mock.Anything, "admin@mimarportfolyo.com").Return(&model.User{
					ID:           1,
					Email:        "admin@mimarportfolyo.com",
					PasswordHash: string(hashedPassword),
					Role:         model.RoleAdmin,
				}, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockRepo, jwtService)

			token, user, err := svc.Login(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)
				assert.Equal(t, tt.input.Email, user.Email)

				claims, err := jwtService.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, user.ID, claims.UserID)
				assert.Equal(t, model.RoleAdmin, claims.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("oldpass"), 10)

	tests := []struct {
		name          string
		userID        uint
		input         ChangePasswordInput
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:   "successful change",
			userID: 1,
			input:  ChangePasswordInput{CurrentPassword: "oldpass", NewPassword: "newpass123"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
					ID:           1,
					PasswordHash: string(hashedPassword),
				}, nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:   "wrong current password",
			userID: 1,
			input:  ChangePasswordInput{CurrentPassword: "nope", NewPassword: "newpass123"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
					ID:           1,
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: errors.ErrWrongPassword,
		},
		{
			name:   "user not found",
			userID: 99,
			input:  ChangePasswordInput{CurrentPassword: "oldpass", NewPassword: "newpass123"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
			err := svc.ChangePassword(context.Background(), tt.userID, tt.input)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_ChangePasswordStoresNewHash(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("oldpass"), 10)
	user := &model.User{ID: 1, PasswordHash: string(hashedPassword)}

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(user, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	svc := NewAuthService(mockRepo, auth.NewJWTService("test-secret"))
	err := svc.ChangePassword(context.Background(), 1, ChangePasswordInput{
		CurrentPassword: "oldpass",
		NewPassword:     "newpass123",
	})

	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("newpass123")))
	mockRepo.AssertExpectations(t)
}

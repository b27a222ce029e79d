package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"mimarfolio/internal/auth"
	"mimarfolio/internal/errors"
	"mimarfolio/internal/model"
	"mimarfolio/internal/repository"
)

const bcryptCost = 10

// LoginInput is the login request payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordInput is the password change payload.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, in LoginInput) (token string, user *model.User, err error)
	ChangePassword(ctx context.Context, userID uint, in ChangePasswordInput) error
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
	}
}

// Login verifies the credentials and returns a signed bearer token plus the
// user. Unknown email and wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, in LoginInput) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// ChangePassword verifies the current password and stores a fresh hash of the
// new one.
func (s *authService) ChangePassword(ctx context.Context, userID uint, in ChangePasswordInput) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return errors.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return errors.ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"mimarfolio/internal/auth"
	"mimarfolio/internal/errors"
	"mimarfolio/internal/model"
	"mimarfolio/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginResponse carries the bearer token and the authenticated user.
type LoginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// MeResponse carries the authenticated user.
type MeResponse struct {
	User *model.User `json:"user"`
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginInput true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var in service.LoginInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
	}
	if err := c.Validate(&in); err != nil {
		return respondError(c, err)
	}

	token, user, err := h.authService.Login(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, LoginResponse{Token: token, User: user})
}

// Me godoc
// @Summary Return the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{Error: "not authenticated", Code: "UNAUTHENTICATED"})
	}
	return c.JSON(http.StatusOK, MeResponse{User: user})
}

// ChangePassword godoc
// @Summary Change the authenticated user's password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ChangePasswordInput true "Passwords"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	user, ok := auth.CurrentUser(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{Error: "not authenticated", Code: "UNAUTHENTICATED"})
	}

	var in service.ChangePasswordInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, errors.ErrorResponse{Error: "invalid request body", Code: "BAD_REQUEST"})
	}
	if err := c.Validate(&in); err != nil {
		return respondError(c, err)
	}

	if err := h.authService.ChangePassword(c.Request().Context(), user.ID, in); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "password updated successfully"})
}

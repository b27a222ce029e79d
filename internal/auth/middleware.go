package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"mimarfolio/internal/errors"
	"mimarfolio/internal/model"
	"mimarfolio/internal/repository"
)

// userContextKey is where the resolved user lives on the echo context.
const userContextKey = "currentUser"

// RequireAuth extracts the bearer token, verifies it and resolves the token
// subject to a live user row. A token for a deleted user is rejected the same
// way as a bad token. The resolved user is attached to the request context.
func RequireAuth(jwtService *JWTService, users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return unauthenticated(c, "missing authorization header")
			}
			if !strings.HasPrefix(header, "Bearer ") {
				return unauthenticated(c, "authorization header must use the Bearer scheme")
			}
			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == "" {
				return unauthenticated(c, "bearer token is empty")
			}

			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				return unauthenticated(c, "invalid or expired token")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return unauthenticated(c, "invalid or expired token")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// RequireRole rejects with 403 unless the attached user's role is one of the
// permitted roles. Must run after RequireAuth.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return unauthenticated(c, "not authenticated")
			}
			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, errors.ErrorResponse{
				Error: "insufficient permissions",
				Code:  "FORBIDDEN",
			})
		}
	}
}

// CurrentUser returns the user attached by RequireAuth.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(userContextKey).(*model.User)
	return user, ok
}

func unauthenticated(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{
		Error: message,
		Code:  "UNAUTHENTICATED",
	})
}

// Package middleware provides HTTP middleware for the post API.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/welldanyogia/webrana-posts-backend/internal/api/response"
	"github.com/welldanyogia/webrana-posts-backend/internal/auth"
	apperrors "github.com/welldanyogia/webrana-posts-backend/internal/errors"
	"github.com/welldanyogia/webrana-posts-backend/internal/logger"
)

// RequireRole resolves the bearer token into a caller identity and rejects
// the request unless the caller holds required. On success the identity is
// stored in the request context for the service layer.
func RequireRole(verifier auth.Verifier, required auth.Role, sec *logger.SecurityLogger) echo.MiddlewareFunc {
	if sec == nil {
		sec = logger.NewSecurityLogger(nil)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				sec.AuthFailure(c.RealIP(), path, "missing_token")
				return deny(http.StatusUnauthorized, "missing bearer token", apperrors.CodeUnauthorized)
			}

			id, err := verifier.Verify(token)
			if err != nil {
				sec.AuthFailure(c.RealIP(), path, "invalid_token")
				return deny(http.StatusUnauthorized, "invalid bearer token", apperrors.CodeUnauthorized)
			}

			if !id.HasRole(required) {
				sec.AccessDenied(c.RealIP(), path, id.Subject, string(required))
				return deny(http.StatusForbidden, "insufficient role", apperrors.CodeForbidden)
			}

			req := c.Request()
			c.SetRequest(req.WithContext(auth.WithIdentity(req.Context(), id)))
			return next(c)
		}
	}
}

// bearerToken extracts the token from a "Bearer <token>" header value
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func deny(status int, message, code string) *echo.HTTPError {
	return echo.NewHTTPError(status, response.ErrorResponse{
		Success: false,
		Error:   message,
		Code:    code,
	})
}

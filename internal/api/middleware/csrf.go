package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	apperrors "github.com/welldanyogia/webrana-posts-backend/internal/errors"
	"github.com/welldanyogia/webrana-posts-backend/internal/logger"
)

// CSRF names shared with clients
const (
	CSRFCookieName = "_csrf"
	CSRFHeaderName = "X-CSRF-Token"
)

// CSRF returns double-submit CSRF protection. Safe methods receive a token
// cookie; unsafe methods must echo it in the X-CSRF-Token header.
func CSRF(secure bool, sec *logger.SecurityLogger) echo.MiddlewareFunc {
	if sec == nil {
		sec = logger.NewSecurityLogger(nil)
	}

	return middleware.CSRFWithConfig(middleware.CSRFConfig{
		TokenLookup:    "header:" + CSRFHeaderName,
		CookieName:     CSRFCookieName,
		CookiePath:     "/",
		CookieSecure:   secure,
		CookieSameSite: http.SameSiteStrictMode,
		ErrorHandler: func(err error, c echo.Context) error {
			sec.CSRFRejected(c.RealIP(), c.Request().URL.Path, err.Error())
			return deny(http.StatusForbidden, "missing or invalid CSRF token", apperrors.CodeForbidden)
		},
	})
}

package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"brewhub/config"
	domainerrors "brewhub/internal/domain/errors"
)

// AdminTokenHeader carries the static admin API token.
const AdminTokenHeader = "X-Admin-Token"

// AdminMiddleware gates the admin surface behind a static token. Sessions
// and password auth are deliberately absent; an empty configured token
// disables the check for local development.
type AdminMiddleware struct {
	token string
}

// NewAdminMiddleware creates a new admin token middleware
func NewAdminMiddleware(cfg *config.Config) *AdminMiddleware {
	return &AdminMiddleware{token: cfg.Admin.Token}
}

// Authenticate rejects requests whose token header does not match.
func (m *AdminMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.token == "" {
			return next(c)
		}

		provided := c.Request().Header.Get(AdminTokenHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.token)) != 1 {
			return domainerrors.ErrUnauthorized
		}

		return next(c)
	}
}

package middleware

import (
	"crypto/subtle"
	"log/slog"

	"fundtransfer-api/internal/config"
	"fundtransfer-api/internal/errors"
	"fundtransfer-api/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// OpsBasicAuth protects account management endpoints with HTTP basic auth.
// The username is compared in constant time and the password is verified
// against a bcrypt hash so no plaintext secret lives in configuration.
func OpsBasicAuth(cfg config.SecurityConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.OpsUser == "" || cfg.OpsPasswordHash == "" {
				slog.Error("basic auth configuration is missing",
					"path", c.Request().URL.Path,
				)
				return handlers.SendError(c, errors.AuthMissingCredentials)
			}

			user, password, ok := c.Request().BasicAuth()
			if !ok {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="Restricted"`)
				return handlers.SendError(c, errors.AuthMissingCredentials)
			}

			if !secureEqual(user, cfg.OpsUser) || bcrypt.CompareHashAndPassword([]byte(cfg.OpsPasswordHash), []byte(password)) != nil {
				slog.Warn("basic auth rejected",
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				)
				return handlers.SendError(c, errors.AuthInvalidCredentials)
			}

			return next(c)
		}
	}
}

func secureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

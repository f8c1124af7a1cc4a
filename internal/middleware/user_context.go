package middleware

import (
	"strings"

	"fre-insights/internal/errors"
	"fre-insights/internal/handlers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// UserIDHeader carries the authenticated user's id, set by the fronting auth layer
	UserIDHeader = "X-User-ID"
	// UserIDContextKey is the echo context key handlers read the user id from
	UserIDContextKey = "user_id"
)

// UserContext requires a UUID in the X-User-ID header and stores it on the echo context.
// Authentication itself happens upstream; every query below is scoped to this id.
func UserContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(UserIDHeader))
			if raw == "" {
				return handlers.SendError(c, errors.UserMissingID)
			}

			userID, err := uuid.Parse(raw)
			if err != nil || userID == uuid.Nil {
				return handlers.SendError(c, errors.UserInvalidID, errors.WithDetails(UserIDHeader+": must be a non-nil UUID"))
			}

			c.Set(UserIDContextKey, userID)
			return next(c)
		}
	}
}

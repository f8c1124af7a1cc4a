package handlers

import (
	"fmt"
	"io"

	"fre-insights/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserIDContextKey is set by middleware.UserContext
const UserIDContextKey = "user_id"

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext returns ErrUnauthorized if user ID is missing or invalid
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}

type upload struct {
	name string
	data []byte
}

// readUpload reads the multipart "file" field, refusing anything larger than maxBytes.
// A nil upload means the error response has already been written; return the error as is.
func readUpload(c echo.Context, maxBytes int64) (*upload, error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, SendError(c, errors.ValidationRequiredField, errors.WithDetails("file: is required"))
	}
	if maxBytes > 0 && header.Size > maxBytes {
		return nil, SendError(c, errors.ImportFileTooLarge,
			errors.WithDetails(fmt.Sprintf("file: %d bytes exceeds the %d byte limit", header.Size, maxBytes)))
	}

	f, err := header.Open()
	if err != nil {
		return nil, SendSystemError(c, fmt.Errorf("failed to open upload: %w", err))
	}
	defer f.Close()

	limit := maxBytes
	if limit <= 0 {
		limit = header.Size
	}
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, SendSystemError(c, fmt.Errorf("failed to read upload: %w", err))
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, SendError(c, errors.ImportFileTooLarge)
	}
	return &upload{name: header.Filename, data: data}, nil
}

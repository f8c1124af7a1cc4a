package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"fre-insights/internal/errors"
	"fre-insights/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Total number of API errors by code, route and status",
	},
	[]string{"code", "route", "status"},
)

// CustomHTTPErrorHandler renders any error that escaped a handler as an ErrorResponse.
// Echo HTTP errors keep their status, validator errors become VALIDATION_001 and
// everything else is hidden behind SYSTEM_001.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	errorResponse, status := resolveError(err, traceID)

	level := slog.LevelWarn
	if status >= 500 {
		level = slog.LevelError
	}
	attrs := []any{
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", status,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	}
	if userID := c.Get(UserIDContextKey); userID != nil {
		attrs = append(attrs, "user_id", userID)
	}
	slog.Log(c.Request().Context(), level, "request failed", attrs...)

	apiErrorsTotal.WithLabelValues(errorResponse.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	if sendErr := c.JSON(status, errorResponse); sendErr != nil {
		slog.Error("failed to send error response", "trace_id", traceID, "error", sendErr)
	}
}

func resolveError(err error, traceID string) (*errors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		return fromHTTPError(httpErr, traceID), httpErr.Code
	}
	if fieldErrors, ok := validation.FieldErrors(err); ok {
		return errors.NewValidationError(fieldErrors, traceID), http.StatusBadRequest
	}
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return errorResponse, errorResponse.GetHTTPStatus()
}

// fromHTTPError keeps the code's own message; a custom echo message (bind failures,
// for instance) goes into the details
func fromHTTPError(httpErr *echo.HTTPError, traceID string) *errors.ErrorResponse {
	var opts []errors.ErrorOption
	if msg := fmt.Sprint(httpErr.Message); msg != "" && msg != http.StatusText(httpErr.Code) {
		opts = append(opts, errors.WithDetails(msg))
	}
	return errors.NewErrorResponse(codeForStatus(httpErr.Code), traceID, opts...)
}

func codeForStatus(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity,
		http.StatusUnsupportedMediaType:
		return errors.ValidationGeneral
	case http.StatusUnauthorized:
		return errors.UserMissingID
	case http.StatusNotFound:
		return errors.SystemRouteNotFound
	case http.StatusRequestEntityTooLarge:
		return errors.ImportFileTooLarge
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}

package handlers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net/http"

	"fre-insights/internal/errors"
	"fre-insights/internal/importer"
	"fre-insights/internal/models"
	"fre-insights/internal/repositories"
	"fre-insights/internal/services"

	"github.com/labstack/echo/v4"
)

// Error responses
//
// Handlers report failures through these helpers only:
//
//  1. SendError for client and domain errors (4xx), e.g.
//     SendError(c, errors.ImportInvalidMapping, errors.WithDetails("..."))
//  2. SendSystemError for repository or unexpected failures (5xx). The internal
//     error is logged and never shown to the client.
//  3. SendServiceError when a service call failed; it maps known domain errors
//     to their code and falls back to SendSystemError.
//
// Request binding and validator failures are returned as plain errors and rendered
// by middleware.CustomHTTPErrorHandler.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs err and sends a generic SYSTEM_001 response
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)
	slog.Error("request failed",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", internalErr,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendServiceError maps an error returned by a service to its API error code
func SendServiceError(c echo.Context, err error) error {
	code, ok := serviceErrorCode(err)
	if !ok {
		return SendSystemError(c, err)
	}
	return SendError(c, code, errors.WithDetails(err.Error()))
}

func serviceErrorCode(err error) (errors.ErrorCode, bool) {
	var validationErr *services.ValidationError
	if stderrors.As(err, &validationErr) {
		return importValidationCode(validationErr), true
	}

	switch {
	case stderrors.Is(err, models.ErrInvalidMonth), stderrors.Is(err, models.ErrInvalidYear):
		return errors.InsightsInvalidPeriod, true
	case stderrors.Is(err, services.ErrInvalidLookback):
		return errors.InsightsInvalidLookback, true
	case stderrors.Is(err, models.ErrInvalidDateRange), stderrors.Is(err, models.ErrInvalidDirection):
		return errors.TransactionInvalidFilter, true
	case stderrors.Is(err, repositories.ErrTransactionNotFound):
		return errors.TransactionNotFound, true
	case stderrors.Is(err, repositories.ErrCategoryNotFound):
		return errors.CategoryNotFound, true
	case stderrors.Is(err, services.ErrInvalidCategory):
		return errors.CategoryInvalidName, true
	case stderrors.Is(err, models.ErrMissingUserID):
		return errors.UserMissingID, true
	case stderrors.Is(err, context.Canceled):
		return errors.ImportCanceled, true
	}
	return "", false
}

func importValidationCode(err *services.ValidationError) errors.ErrorCode {
	switch {
	case stderrors.Is(err, services.ErrFileTooLarge):
		return errors.ImportFileTooLarge
	case stderrors.Is(err, importer.ErrUnsupportedDateFormat):
		return errors.ImportUnsupportedDateFormat
	case stderrors.Is(err, importer.ErrMissingCurrency), stderrors.Is(err, models.ErrInvalidCurrency):
		return errors.ImportInvalidCurrency
	}

	switch err.Field {
	case "file":
		return errors.ImportInvalidFile
	case "mapping":
		return errors.ImportInvalidMapping
	case "currency":
		return errors.ImportInvalidCurrency
	case "date_format":
		return errors.ImportUnsupportedDateFormat
	case "user_id":
		return errors.UserMissingID
	default:
		return errors.ValidationGeneral
	}
}

package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "fre-insights/internal/errors"
	"fre-insights/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) handle(err error, traceID string) (*httptest.ResponseRecorder, apierrors.ErrorResponse) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil), rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	CustomHTTPErrorHandler(err, c)

	var body apierrors.ErrorResponse
	if rec.Code != http.StatusOK {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	}
	return rec, body
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError_KeepsStatus() {
	rec, body := s.handle(echo.ErrNotFound, "test-trace-id")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("SYSTEM_007", body.Error.Code)
	s.Equal("Resource not found", body.Error.Message)
	s.Equal("test-trace-id", body.Error.TraceID)
	s.Empty(body.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError_CustomMessageBecomesDetail() {
	bindErr := echo.NewHTTPError(http.StatusBadRequest, "strconv.ParseInt: parsing \"abc\": invalid syntax")

	rec, body := s.handle(bindErr, "test-trace-id")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", body.Error.Code)
	s.Equal("Validation failed", body.Error.Message)
	s.Equal([]string{"strconv.ParseInt: parsing \"abc\": invalid syntax"}, body.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestWrappedEchoHTTPError() {
	rec, body := s.handle(fmt.Errorf("binding month: %w", echo.ErrUnsupportedMediaType), "t")

	s.Equal(http.StatusUnsupportedMediaType, rec.Code)
	s.Equal("VALIDATION_001", body.Error.Code)
}

func (s *ErrorHandlerTestSuite) TestGenericError_HidesInternals() {
	rec, body := s.handle(errors.New("sql: database is closed"), "test-trace-id")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", body.Error.Code)
	s.NotContains(rec.Body.String(), "database is closed")
	s.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

func (s *ErrorHandlerTestSuite) TestNoTraceID() {
	_, body := s.handle(errors.New("test error"), "")
	s.Equal("unknown", body.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsLeftAlone() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	s.Require().NoError(c.JSON(http.StatusOK, map[string]string{"status": "ok"}))

	CustomHTTPErrorHandler(errors.New("test error"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "SYSTEM_001")
}

func (s *ErrorHandlerTestSuite) TestCodeForStatus() {
	testCases := []struct {
		status   int
		expected apierrors.ErrorCode
	}{
		{http.StatusBadRequest, apierrors.ValidationGeneral},
		{http.StatusUnauthorized, apierrors.UserMissingID},
		{http.StatusNotFound, apierrors.SystemRouteNotFound},
		{http.StatusMethodNotAllowed, apierrors.ValidationGeneral},
		{http.StatusRequestEntityTooLarge, apierrors.ImportFileTooLarge},
		{http.StatusUnprocessableEntity, apierrors.ValidationGeneral},
		{http.StatusTooManyRequests, apierrors.SystemRateLimitExceeded},
		{http.StatusInternalServerError, apierrors.SystemInternalError},
		{http.StatusServiceUnavailable, apierrors.SystemServiceUnavailable},
		{http.StatusTeapot, apierrors.SystemUnexpectedError},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			s.Equal(tc.expected, codeForStatus(tc.status))

			rec, body := s.handle(echo.NewHTTPError(tc.status), "test-trace-id")
			s.Equal(tc.status, rec.Code)
			s.Equal(string(tc.expected), body.Error.Code)
		})
	}
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	query := struct {
		Month int `query:"month" validate:"min=1,max=12"`
	}{Month: 13}
	err := validation.NewValidator().Struct(query)
	s.Require().Error(err)

	rec, body := s.handle(err, "test-trace-id")

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", body.Error.Code)
	s.Equal([]string{"month: must be at most 12"}, body.Error.Details)
}

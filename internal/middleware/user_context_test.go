package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fre-insights/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type UserContextTestSuite struct {
	suite.Suite
	e *echo.Echo
}

func TestUserContextTestSuite(t *testing.T) {
	suite.Run(t, new(UserContextTestSuite))
}

func (s *UserContextTestSuite) SetupTest() {
	s.e = echo.New()
}

func (s *UserContextTestSuite) serve(header string) (*httptest.ResponseRecorder, interface{}, bool) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil)
	if header != "" {
		req.Header.Set(UserIDHeader, header)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	var seen interface{}
	called := false
	handler := UserContext()(func(c echo.Context) error {
		called = true
		seen = c.Get(UserIDContextKey)
		return c.NoContent(http.StatusNoContent)
	})

	s.Require().NoError(handler(c))
	return rec, seen, called
}

func (s *UserContextTestSuite) TestValidUserID() {
	userID := uuid.New()

	rec, seen, called := s.serve(" " + userID.String() + " ")

	s.True(called)
	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal(userID, seen)
}

func (s *UserContextTestSuite) TestRejectedUserIDs() {
	testCases := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{"missing", "", http.StatusUnauthorized, string(errors.UserMissingID)},
		{"not a uuid", "user-42", http.StatusBadRequest, string(errors.UserInvalidID)},
		{"nil uuid", uuid.Nil.String(), http.StatusBadRequest, string(errors.UserInvalidID)},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec, _, called := s.serve(tc.header)

			s.False(called)
			s.Equal(tc.wantStatus, rec.Code)

			var body errors.ErrorResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
			s.Equal(tc.wantCode, body.Error.Code)
		})
	}
}

package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fre-insights/internal/config"
	"fre-insights/internal/database"
	"fre-insights/internal/dto"
	"fre-insights/internal/errors"
	"fre-insights/internal/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

const statement = "date,description,amount\n" +
	"2024-03-01,NETFLIX.COM,-99.90\n" +
	"2024-03-02,MIGROS ISTANBUL,-412.35\n" +
	"2024-03-05,SALARY ACME,45000.00\n"

type RouterTestSuite struct {
	suite.Suite
	echo   *echo.Echo
	userID uuid.UUID
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Environment:      "test",
			CORSAllowOrigins: []string{"http://localhost:3000"},
		},
		Import: config.ImportConfig{
			MaxUploadBytes: 1 << 20,
			PreviewRows:    20,
			AutoCategorize: true,
		},
		Insights: config.InsightsConfig{
			CacheTTL:              time.Minute,
			CacheMaxCost:          100,
			CacheNumCounters:      1000,
			DefaultLookbackMonths: 6,
		},
		Detectors: config.DefaultDetectorsConfig(),
		Security: config.SecurityConfig{
			RateLimitPerSecond: 1000,
			RateLimitBurst:     1000,
		},
	}
}

func (s *RouterTestSuite) SetupTest() {
	db := database.SetupTestDB(s.T())
	cfg := testConfig()
	reg := prometheus.NewRegistry()

	container, err := NewContainer(cfg, db.DB, reg, nil)
	s.Require().NoError(err)

	s.echo = NewRouter(cfg, container, db, reg)
	s.userID = uuid.New()
}

func (s *RouterTestSuite) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) get(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(middleware.UserIDHeader, s.userID.String())
	return s.do(req)
}

func (s *RouterTestSuite) upload(csv string) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fields := map[string]string{
		"dateColumn":        "0",
		"descriptionColumn": "1",
		"amountColumn":      "2",
		"currency":          "TRY",
		"dateFormat":        "iso",
		"hasHeader":         "true",
	}
	for k, v := range fields {
		s.Require().NoError(w.WriteField(k, v))
	}
	part, err := w.CreateFormFile("file", "statement.csv")
	s.Require().NoError(err)
	_, err = part.Write([]byte(csv))
	s.Require().NoError(err)
	s.Require().NoError(w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	req.Header.Set(middleware.UserIDHeader, s.userID.String())
	return s.do(req)
}

func decode[T any](s *RouterTestSuite, rec *httptest.ResponseRecorder) T {
	var v T
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (s *RouterTestSuite) TestHealth() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get(middleware.TraceIDHeader))
	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func (s *RouterTestSuite) TestUserHeaderRequired() {
	rec := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("USER_001", decode[errors.ErrorResponse](s, rec).Error.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	req.Header.Set(middleware.UserIDHeader, "42")
	rec = s.do(req)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("USER_002", decode[errors.ErrorResponse](s, rec).Error.Code)
}

func (s *RouterTestSuite) TestUnknownRoute() {
	rec := s.get("/api/v1/budgets")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("SYSTEM_007", decode[errors.ErrorResponse](s, rec).Error.Code)
}

func (s *RouterTestSuite) TestValidationErrorsAreRendered() {
	rec := s.get("/api/v1/insights/anomalies?month=13&year=2024")
	s.Equal(http.StatusBadRequest, rec.Code)

	resp := decode[errors.ErrorResponse](s, rec)
	s.Equal("VALIDATION_001", resp.Error.Code)
	s.Contains(resp.Error.Details, "month: must be at most 12")
	s.Equal(rec.Header().Get(middleware.TraceIDHeader), resp.Error.TraceID)
}

func (s *RouterTestSuite) TestImportThenQuery() {
	rec := s.upload(statement)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	first := decode[dto.ImportResponse](s, rec)
	s.Equal(3, first.Imported)
	s.Equal(0, first.Skipped)

	rec = s.upload(statement)
	s.Require().Equal(http.StatusOK, rec.Code)
	second := decode[dto.ImportResponse](s, rec)
	s.Equal(0, second.Imported)
	s.Equal(3, second.Skipped)

	rec = s.get("/api/v1/transactions?start=2024-03-01&end=2024-03-31")
	s.Require().Equal(http.StatusOK, rec.Code)
	list := decode[dto.ListTransactionsResponse](s, rec)
	s.Equal(int64(3), list.Pagination.Total)
	s.Len(list.Transactions, 3)

	rec = s.get("/api/v1/transactions?direction=income")
	list = decode[dto.ListTransactionsResponse](s, rec)
	s.Require().Len(list.Transactions, 1)
	s.Equal("45000.00", list.Transactions[0].Amount)

	rec = s.get("/api/v1/summary?month=3&year=2024")
	s.Require().Equal(http.StatusOK, rec.Code)
	summary := decode[dto.SummaryResponse](s, rec)
	s.Equal("45000.00", summary.Income)
	s.Equal("512.25", summary.Expense)
	s.Equal(3, summary.TransactionCount)

	rec = s.get("/api/v1/imports")
	s.Require().Equal(http.StatusOK, rec.Code)
	history := decode[dto.ImportHistoryResponse](s, rec)
	s.Len(history.Imports, 2)
	s.Equal(int64(2), history.Pagination.Total)

	rec = s.get("/api/v1/insights?month=3&year=2024")
	s.Require().Equal(http.StatusOK, rec.Code)
	bundle := decode[dto.InsightsResponse](s, rec)
	s.Equal(3, bundle.Month)
	s.Equal(6, bundle.LookbackMonths)

	rec = s.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "import_rows_total")
}

func (s *RouterTestSuite) TestOtherUsersDataIsInvisible() {
	s.Require().Equal(http.StatusOK, s.upload(statement).Code)

	s.userID = uuid.New()
	rec := s.get("/api/v1/transactions")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Empty(decode[dto.ListTransactionsResponse](s, rec).Transactions)
}

func (s *RouterTestSuite) TestCategoryLifecycle() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", bytes.NewBufferString(`{"name":"Pets"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(middleware.UserIDHeader, s.userID.String())
	rec := s.do(req)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[dto.CategoryResponse](s, rec)

	rec = s.get("/api/v1/categories")
	s.Require().Equal(http.StatusOK, rec.Code)
	list := decode[dto.ListCategoriesResponse](s, rec)
	s.Require().Len(list.Categories, 1)
	s.Equal(created.ID, list.Categories[0].ID)
}

func (s *RouterTestSuite) TestBodyLimit() {
	s.Equal("2048K", bodyLimit(1<<20))
	s.Equal("32M", bodyLimit(0))
}

func (s *RouterTestSuite) TestGenerateHistory_OnlyInDevelopment() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/dev/generate-history", nil)
	req.Header.Set(middleware.UserIDHeader, s.userID.String())
	s.Equal(http.StatusNotFound, s.do(req).Code)

	db := database.SetupTestDB(s.T())
	cfg := testConfig()
	cfg.Server.Environment = "development"
	reg := prometheus.NewRegistry()
	container, err := NewContainer(cfg, db.DB, reg, nil)
	s.Require().NoError(err)
	s.echo = NewRouter(cfg, container, db, reg)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/dev/generate-history?months=2&seed=11", nil)
	req.Header.Set(middleware.UserIDHeader, s.userID.String())
	rec := s.do(req)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	resp := decode[dto.ImportResponse](s, rec)
	s.Positive(resp.Imported)
	s.Zero(resp.Malformed)

	list := decode[dto.ListTransactionsResponse](s, s.get("/api/v1/transactions?limit=1"))
	s.EqualValues(resp.Imported, list.Pagination.Total)
}

package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"fre-insights/internal/dto"
	"fre-insights/internal/models"
	"fre-insights/internal/services"
	"fre-insights/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type CategoryHandlerTestSuite struct {
	suite.Suite
	echo            *echo.Echo
	ctrl            *gomock.Controller
	categoryService *service_mocks.MockCategoryServiceInterface
	handler         *CategoryHandler
	userID          uuid.UUID
}

func TestCategoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(CategoryHandlerTestSuite))
}

func (s *CategoryHandlerTestSuite) SetupTest() {
	s.echo = newTestEcho()
	s.ctrl = gomock.NewController(s.T())
	s.categoryService = service_mocks.NewMockCategoryServiceInterface(s.ctrl)
	s.handler = NewCategoryHandler(s.categoryService)
	s.userID = uuid.New()
}

func (s *CategoryHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CategoryHandlerTestSuite) TestListCategories() {
	c, rec := newContext(s.echo, http.MethodGet, "/api/v1/categories", nil, "", s.userID)

	created := time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)
	s.categoryService.EXPECT().ListCategories(gomock.Any(), s.userID).Return([]models.Category{
		{ID: uuid.New(), UserID: s.userID, Name: models.CategoryDining, CreatedAt: created},
		{ID: uuid.New(), UserID: s.userID, Name: models.CategoryGroceries, CreatedAt: created},
	}, nil)

	s.Require().NoError(s.handler.ListCategories(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListCategoriesResponse
	s.Require().NoError(decodeJSON(rec, &resp))
	s.Require().Len(resp.Categories, 2)
	s.Equal(models.CategoryDining, resp.Categories[0].Name)
}

func (s *CategoryHandlerTestSuite) TestListCategories_Empty() {
	c, rec := newContext(s.echo, http.MethodGet, "/api/v1/categories", nil, "", s.userID)

	s.categoryService.EXPECT().ListCategories(gomock.Any(), s.userID).Return(nil, nil)

	s.Require().NoError(s.handler.ListCategories(c))
	s.JSONEq(`{"categories":[]}`, rec.Body.String())
}

func (s *CategoryHandlerTestSuite) TestCreateCategory() {
	c, rec := newContext(s.echo, http.MethodPost, "/api/v1/categories",
		jsonBody(dto.CreateCategoryRequest{Name: "Pets"}), echo.MIMEApplicationJSON, s.userID)

	category := &models.Category{ID: uuid.New(), UserID: s.userID, Name: "Pets", CreatedAt: time.Now().UTC()}
	s.categoryService.EXPECT().CreateCategory(gomock.Any(), s.userID, "Pets").Return(category, nil)

	s.Require().NoError(s.handler.CreateCategory(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.CategoryResponse
	s.Require().NoError(decodeJSON(rec, &resp))
	s.Equal(category.ID, resp.ID)
	s.Equal("Pets", resp.Name)
}

func (s *CategoryHandlerTestSuite) TestCreateCategory_Validation() {
	testCases := []struct {
		name string
		body string
	}{
		{"missing name", `{}`},
		{"name too long", `{"name":"` + strings.Repeat("x", 51) + `"}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, _ := newContext(s.echo, http.MethodPost, "/api/v1/categories",
				strings.NewReader(tc.body), echo.MIMEApplicationJSON, s.userID)

			err := s.handler.CreateCategory(c)
			var validationErrs validator.ValidationErrors
			s.Require().ErrorAs(err, &validationErrs)
			s.Equal("name", validationErrs[0].Field())
		})
	}
}

func (s *CategoryHandlerTestSuite) TestCreateCategory_BlankNameRejectedByService() {
	c, rec := newContext(s.echo, http.MethodPost, "/api/v1/categories",
		strings.NewReader(`{"name":"   "}`), echo.MIMEApplicationJSON, s.userID)

	s.categoryService.EXPECT().CreateCategory(gomock.Any(), s.userID, "   ").Return(nil, services.ErrInvalidCategory)

	s.Require().NoError(s.handler.CreateCategory(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("CATEGORY_002", decodeError(rec).Error.Code)
}

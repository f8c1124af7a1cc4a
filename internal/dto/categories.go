package dto

import (
	"time"

	"fre-insights/internal/models"

	"github.com/google/uuid"
)

// CreateCategoryRequest creates a user category; an existing name is returned as-is
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

func NewCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
}

func NewListCategoriesResponse(categories []models.Category) ListCategoriesResponse {
	items := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		items = append(items, NewCategoryResponse(&categories[i]))
	}
	return ListCategoriesResponse{Categories: items}
}

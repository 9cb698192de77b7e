package public

import (
	"errors"

	"github.com/feastline-api/internal/http/response"
	"github.com/feastline-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SaveCategoryRequest create/update payload.
type SaveCategoryRequest struct {
	Name      *string `json:"name"`
	Image     *string `json:"image"`
	SortOrder *int    `json:"sort_order"`
}

// ListCategories returns all categories.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CategoryService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "category list failed", err)
		return
	}
	response.Success(c, categories)
}

// GetCategory returns one category.
func (h *Handler) GetCategory(c *gin.Context) {
	categoryID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	category, err := h.CategoryService.Get(categoryID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			respondError(c, response.CodeNotFound, "category not found", nil)
		default:
			respondError(c, response.CodeInternal, "category fetch failed", err)
		}
		return
	}
	response.Success(c, category)
}

// CreateCategory adds a category.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req SaveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	category, err := h.CategoryService.Create(service.SaveCategoryInput{
		Name:      req.Name,
		Image:     req.Image,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		h.respondCategorySaveError(c, err, "category creation failed")
		return
	}
	response.Created(c, category)
}

// UpdateCategory applies a partial category update.
func (h *Handler) UpdateCategory(c *gin.Context) {
	categoryID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req SaveCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	category, err := h.CategoryService.Update(categoryID, service.SaveCategoryInput{
		Name:      req.Name,
		Image:     req.Image,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		h.respondCategorySaveError(c, err, "category update failed")
		return
	}
	response.Success(c, category)
}

// DeleteCategory removes a category.
func (h *Handler) DeleteCategory(c *gin.Context) {
	categoryID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(categoryID); err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			respondError(c, response.CodeNotFound, "category not found", nil)
		default:
			respondError(c, response.CodeInternal, "category delete failed", err)
		}
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

func (h *Handler) respondCategorySaveError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, response.CodeBadRequest, "invalid category input", nil)
	case errors.Is(err, service.ErrCategoryExists):
		respondError(c, response.CodeConflict, "category already exists", nil)
	case errors.Is(err, service.ErrCategoryNotFound):
		respondError(c, response.CodeNotFound, "category not found", nil)
	default:
		respondError(c, response.CodeInternal, fallback, err)
	}
}

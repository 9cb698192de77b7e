package public

import (
	"errors"
	"strconv"

	"github.com/feastline-api/internal/http/response"
	"github.com/feastline-api/internal/models"
	"github.com/feastline-api/internal/repository"
	"github.com/feastline-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SaveProductRequest create/update payload. Pointers distinguish
// omitted fields on update.
type SaveProductRequest struct {
	CategoryID  *uint         `json:"category_id"`
	ChefID      *uint         `json:"chef_id"`
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Text        *string       `json:"text"`
	Ingredients *string       `json:"ingredients"`
	Allergens   *string       `json:"allergens"`
	Price       *models.Money `json:"price"`
	OldPrice    *models.Money `json:"old_price"`
	Discount    *models.Money `json:"discount"`
	Quantity    *int          `json:"quantity"`
	Image       *string       `json:"image"`
	IsAvailable *bool         `json:"is_available"`
	SortOrder   *int          `json:"sort_order"`
}

func (r SaveProductRequest) toInput() service.SaveProductInput {
	return service.SaveProductInput{
		CategoryID:  r.CategoryID,
		ChefID:      r.ChefID,
		Name:        r.Name,
		Description: r.Description,
		Text:        r.Text,
		Ingredients: r.Ingredients,
		Allergens:   r.Allergens,
		Price:       r.Price,
		OldPrice:    r.OldPrice,
		Discount:    r.Discount,
		Quantity:    r.Quantity,
		Image:       r.Image,
		IsAvailable: r.IsAvailable,
		SortOrder:   r.SortOrder,
	}
}

// ListProducts returns the catalog. Favorite state follows the caller.
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := parsePageQuery(c)
	filter := repository.ProductListFilter{
		Keyword:  c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}
	if raw := c.Query("category_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.CategoryID = uint(id)
		}
	}
	if raw := c.Query("chef_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.ChefID = uint(id)
		}
	}
	if c.Query("available") == "true" {
		filter.OnlyAvailable = true
	}

	products, total, err := h.ProductService.List(optionalUserID(c), filter)
	if err != nil {
		respondError(c, response.CodeInternal, "product list failed", err)
		return
	}
	response.SuccessWithPage(c, products, buildPagination(page, pageSize, total))
}

// GetProduct returns one product.
func (h *Handler) GetProduct(c *gin.Context) {
	productID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	view, err := h.ProductService.Get(optionalUserID(c), productID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "product not found", nil)
		default:
			respondError(c, response.CodeInternal, "product fetch failed", err)
		}
		return
	}
	response.Success(c, view)
}

// CreateProduct adds a menu item.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	product, err := h.ProductService.Create(req.toInput())
	if err != nil {
		h.respondProductSaveError(c, err, "product creation failed")
		return
	}
	response.Created(c, product)
}

// UpdateProduct applies a partial product update.
func (h *Handler) UpdateProduct(c *gin.Context) {
	productID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	product, err := h.ProductService.Update(productID, req.toInput())
	if err != nil {
		h.respondProductSaveError(c, err, "product update failed")
		return
	}
	response.Success(c, product)
}

// DeleteProduct removes a menu item.
func (h *Handler) DeleteProduct(c *gin.Context) {
	productID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(productID); err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "product not found", nil)
		default:
			respondError(c, response.CodeInternal, "product delete failed", err)
		}
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

func (h *Handler) respondProductSaveError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, response.CodeBadRequest, "invalid product input", nil)
	case errors.Is(err, service.ErrCategoryNotFound):
		respondError(c, response.CodeBadRequest, "category not found", nil)
	case errors.Is(err, service.ErrProductNotFound):
		respondError(c, response.CodeNotFound, "product not found", nil)
	default:
		respondError(c, response.CodeInternal, fallback, err)
	}
}

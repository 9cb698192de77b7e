package public

import (
	"errors"

	"github.com/feastline-api/internal/http/response"
	"github.com/feastline-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest add/remove line payload.
type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// GetMyCart returns the caller's cart, creating it on first use.
func (h *Handler) GetMyCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	cart, err := h.CartService.GetOrCreateCart(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "cart fetch failed", err)
		return
	}
	response.Success(c, cart)
}

// AddCartItem adds a product line, merging with an existing one.
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	cartID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	cart, err := h.CartService.AddItem(uid, cartID, req.ProductID, quantity)
	if err != nil {
		h.respondCartError(c, err, "cart update failed")
		return
	}
	response.Success(c, cart)
}

// RemoveCartItem removes a product line.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	cartID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	cart, err := h.CartService.RemoveItem(uid, cartID, req.ProductID)
	if err != nil {
		h.respondCartError(c, err, "cart update failed")
		return
	}
	response.Success(c, cart)
}

// ClearCart removes all lines.
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	cartID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	cart, err := h.CartService.Clear(uid, cartID)
	if err != nil {
		h.respondCartError(c, err, "cart clear failed")
		return
	}
	response.Success(c, cart)
}

func (h *Handler) respondCartError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		respondError(c, response.CodeBadRequest, "quantity must be positive", nil)
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, response.CodeBadRequest, "invalid cart input", nil)
	case errors.Is(err, service.ErrCartNotFound):
		respondError(c, response.CodeNotFound, "cart not found", nil)
	case errors.Is(err, service.ErrCartForbidden):
		respondError(c, response.CodeForbidden, "cart belongs to another user", nil)
	case errors.Is(err, service.ErrCartItemNotFound):
		respondError(c, response.CodeNotFound, "item not in cart", nil)
	case errors.Is(err, service.ErrProductNotFound):
		respondError(c, response.CodeNotFound, "product not found", nil)
	case errors.Is(err, service.ErrProductNotAvailable):
		respondError(c, response.CodeBadRequest, "product not available", nil)
	default:
		respondError(c, response.CodeInternal, fallback, err)
	}
}

package public

import (
	"errors"

	"github.com/feastline-api/internal/http/response"
	"github.com/feastline-api/internal/models"
	"github.com/feastline-api/internal/repository"
	"github.com/feastline-api/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderLineRequest one requested line.
type OrderLineRequest struct {
	ProductID uint         `json:"product_id" binding:"required"`
	Quantity  int          `json:"quantity" binding:"required"`
	Price     models.Money `json:"price"`
}

// CreateOrderRequest order creation payload.
type CreateOrderRequest struct {
	Address string             `json:"address"`
	Note    string             `json:"note"`
	Items   []OrderLineRequest `json:"items" binding:"required"`
}

// CreateOrder places an order.
func (h *Handler) CreateOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	items := make([]service.OrderLineInput, 0, len(req.Items))
	for _, line := range req.Items {
		items = append(items, service.OrderLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	order, err := h.OrderService.Create(service.CreateOrderInput{
		UserID:  uid,
		Address: req.Address,
		Note:    req.Note,
		Items:   items,
	})
	if err != nil {
		h.respondOrderError(c, err, "order creation failed")
		return
	}
	response.Created(c, order)
}

// ListOrders returns the caller's orders.
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := parsePageQuery(c)

	orders, total, err := h.OrderService.ListByUser(repository.OrderListFilter{
		UserID:   uid,
		Status:   c.Query("status"),
		OrderNo:  c.Query("order_no"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "order list failed", err)
		return
	}
	response.SuccessWithPage(c, orders, buildPagination(page, pageSize, total))
}

// GetOrder returns one of the caller's orders.
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	order, err := h.OrderService.GetByIDAndUser(orderID, uid)
	if err != nil {
		h.respondOrderError(c, err, "order fetch failed")
		return
	}
	response.Success(c, order)
}

// CancelOrder cancels a pending order.
func (h *Handler) CancelOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	order, err := h.OrderService.Cancel(orderID, uid)
	if err != nil {
		h.respondOrderError(c, err, "order cancel failed")
		return
	}
	response.Success(c, order)
}

func (h *Handler) respondOrderError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrEmptyOrder):
		respondError(c, response.CodeBadRequest, "order must contain at least one item", nil)
	case errors.Is(err, service.ErrInvalidQuantity):
		respondError(c, response.CodeBadRequest, "quantity must be positive", nil)
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, response.CodeBadRequest, "invalid order input", nil)
	case errors.Is(err, service.ErrProductNotFound):
		respondError(c, response.CodeNotFound, "product not found", nil)
	case errors.Is(err, service.ErrProductNotAvailable):
		respondError(c, response.CodeBadRequest, "product not available", nil)
	case errors.Is(err, service.ErrOrderNotFound):
		respondError(c, response.CodeNotFound, "order not found", nil)
	case errors.Is(err, service.ErrInvalidStatusChange):
		respondError(c, response.CodeBadRequest, "order status cannot change", nil)
	default:
		respondError(c, response.CodeInternal, fallback, err)
	}
}

package public

import (
	"errors"

	"github.com/feastline-api/internal/http/response"
	"github.com/feastline-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreatePaymentRequest payment payload.
type CreatePaymentRequest struct {
	OrderID uint   `json:"order_id" binding:"required"`
	Method  string `json:"method" binding:"required"`
}

// CreatePayment records a payment and completes the order.
func (h *Handler) CreatePayment(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	payment, err := h.PaymentService.Create(service.CreatePaymentInput{
		UserID:  uid,
		OrderID: req.OrderID,
		Method:  req.Method,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, response.CodeBadRequest, "invalid payment input", nil)
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "order not found", nil)
		case errors.Is(err, service.ErrInvalidStatusChange):
			respondError(c, response.CodeBadRequest, "order cannot be paid", nil)
		case errors.Is(err, service.ErrPaymentExists):
			respondError(c, response.CodeConflict, "order already paid", nil)
		default:
			respondError(c, response.CodeInternal, "payment failed", err)
		}
		return
	}
	response.Created(c, payment)
}

// ListPayments returns the caller's payments.
func (h *Handler) ListPayments(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	page, pageSize := parsePageQuery(c)

	payments, total, err := h.PaymentService.ListByUser(uid, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "payment list failed", err)
		return
	}
	response.SuccessWithPage(c, payments, buildPagination(page, pageSize, total))
}

// GetPayment returns one of the caller's payments.
func (h *Handler) GetPayment(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	paymentID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	payment, err := h.PaymentService.GetByIDAndUser(paymentID, uid)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPaymentNotFound):
			respondError(c, response.CodeNotFound, "payment not found", nil)
		default:
			respondError(c, response.CodeInternal, "payment fetch failed", err)
		}
		return
	}
	response.Success(c, payment)
}

package public

import (
	"errors"

	"github.com/feastline-api/internal/http/response"
	"github.com/feastline-api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateReviewRequest review payload.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// ListProductReviews returns reviews for one product.
func (h *Handler) ListProductReviews(c *gin.Context) {
	productID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	page, pageSize := parsePageQuery(c)

	reviews, total, err := h.ReviewService.ListByProduct(productID, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "review list failed", err)
		return
	}
	response.SuccessWithPage(c, reviews, buildPagination(page, pageSize, total))
}

// CreateProductReview adds a review to a product.
func (h *Handler) CreateProductReview(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	review, err := h.ReviewService.Create(service.CreateReviewInput{
		UserID:    uid,
		ProductID: productID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRating):
			respondError(c, response.CodeBadRequest, "rating must be between 1 and 5", nil)
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "product not found", nil)
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, response.CodeBadRequest, "invalid review input", nil)
		default:
			respondError(c, response.CodeInternal, "review creation failed", err)
		}
		return
	}
	response.Created(c, review)
}

// DeleteReview removes the caller's own review.
func (h *Handler) DeleteReview(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	reviewID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.ReviewService.Delete(reviewID, uid); err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			respondError(c, response.CodeNotFound, "review not found", nil)
		case errors.Is(err, service.ErrReviewForbidden):
			respondError(c, response.CodeForbidden, "review belongs to another user", nil)
		default:
			respondError(c, response.CodeInternal, "review delete failed", err)
		}
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

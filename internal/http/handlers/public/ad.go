package public

import (
	"errors"
	"time"

	"github.com/feastline-api/internal/http/response"
	"github.com/feastline-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SaveAdRequest create/update payload.
type SaveAdRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	TargetURL   *string    `json:"target_url"`
	StartAt     *time.Time `json:"start_at"`
	EndAt       *time.Time `json:"end_at"`
	IsActive    *bool      `json:"is_active"`
	SortOrder   *int       `json:"sort_order"`
}

func (r SaveAdRequest) toInput() service.SaveAdInput {
	return service.SaveAdInput{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		TargetURL:   r.TargetURL,
		StartAt:     r.StartAt,
		EndAt:       r.EndAt,
		IsActive:    r.IsActive,
		SortOrder:   r.SortOrder,
	}
}

// ListAds returns active banners.
func (h *Handler) ListAds(c *gin.Context) {
	ads, err := h.AdService.ListActive()
	if err != nil {
		respondError(c, response.CodeInternal, "ad list failed", err)
		return
	}
	response.Success(c, ads)
}

// CreateAd adds a banner.
func (h *Handler) CreateAd(c *gin.Context) {
	var req SaveAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	ad, err := h.AdService.Create(req.toInput())
	if err != nil {
		h.respondAdSaveError(c, err, "ad creation failed")
		return
	}
	response.Created(c, ad)
}

// UpdateAd applies a partial banner update.
func (h *Handler) UpdateAd(c *gin.Context) {
	adID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req SaveAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	ad, err := h.AdService.Update(adID, req.toInput())
	if err != nil {
		h.respondAdSaveError(c, err, "ad update failed")
		return
	}
	response.Success(c, ad)
}

// DeleteAd removes a banner.
func (h *Handler) DeleteAd(c *gin.Context) {
	adID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.AdService.Delete(adID); err != nil {
		switch {
		case errors.Is(err, service.ErrAdNotFound):
			respondError(c, response.CodeNotFound, "ad not found", nil)
		default:
			respondError(c, response.CodeInternal, "ad delete failed", err)
		}
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

func (h *Handler) respondAdSaveError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, response.CodeBadRequest, "invalid ad input", nil)
	case errors.Is(err, service.ErrAdNotFound):
		respondError(c, response.CodeNotFound, "ad not found", nil)
	default:
		respondError(c, response.CodeInternal, fallback, err)
	}
}

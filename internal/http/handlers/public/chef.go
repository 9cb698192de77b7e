package public

import (
	"errors"

	"github.com/feastline-api/internal/http/response"
	"github.com/feastline-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SaveChefRequest create/update payload.
type SaveChefRequest struct {
	Name      *string  `json:"name"`
	Bio       *string  `json:"bio"`
	Image     *string  `json:"image"`
	Specialty *string  `json:"specialty"`
	Rating    *float64 `json:"rating"`
}

// ListChefs returns all chef profiles.
func (h *Handler) ListChefs(c *gin.Context) {
	chefs, err := h.ChefService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "chef list failed", err)
		return
	}
	response.Success(c, chefs)
}

// GetChef returns one chef profile.
func (h *Handler) GetChef(c *gin.Context) {
	chefID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	chef, err := h.ChefService.Get(chefID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrChefNotFound):
			respondError(c, response.CodeNotFound, "chef not found", nil)
		default:
			respondError(c, response.CodeInternal, "chef fetch failed", err)
		}
		return
	}
	response.Success(c, chef)
}

// CreateChef adds a chef profile.
func (h *Handler) CreateChef(c *gin.Context) {
	var req SaveChefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	chef, err := h.ChefService.Create(service.SaveChefInput{
		Name:      req.Name,
		Bio:       req.Bio,
		Image:     req.Image,
		Specialty: req.Specialty,
		Rating:    req.Rating,
	})
	if err != nil {
		h.respondChefSaveError(c, err, "chef creation failed")
		return
	}
	response.Created(c, chef)
}

// UpdateChef applies a partial chef update.
func (h *Handler) UpdateChef(c *gin.Context) {
	chefID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req SaveChefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	chef, err := h.ChefService.Update(chefID, service.SaveChefInput{
		Name:      req.Name,
		Bio:       req.Bio,
		Image:     req.Image,
		Specialty: req.Specialty,
		Rating:    req.Rating,
	})
	if err != nil {
		h.respondChefSaveError(c, err, "chef update failed")
		return
	}
	response.Success(c, chef)
}

// DeleteChef removes a chef profile.
func (h *Handler) DeleteChef(c *gin.Context) {
	chefID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.ChefService.Delete(chefID); err != nil {
		switch {
		case errors.Is(err, service.ErrChefNotFound):
			respondError(c, response.CodeNotFound, "chef not found", nil)
		default:
			respondError(c, response.CodeInternal, "chef delete failed", err)
		}
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

func (h *Handler) respondChefSaveError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, response.CodeBadRequest, "invalid chef input", nil)
	case errors.Is(err, service.ErrChefNotFound):
		respondError(c, response.CodeNotFound, "chef not found", nil)
	default:
		respondError(c, response.CodeInternal, fallback, err)
	}
}

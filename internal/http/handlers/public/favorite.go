package public

import (
	"errors"

	"github.com/feastline-api/internal/http/response"
	"github.com/feastline-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ListFavorites returns the caller's favorites.
func (h *Handler) ListFavorites(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	favorites, err := h.FavoriteService.ListByUser(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "favorite list failed", err)
		return
	}
	response.Success(c, favorites)
}

// ToggleFavorite flips the favorite state for a product. Adding replies
// 201, removing replies 200.
func (h *Handler) ToggleFavorite(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := parseUintParam(c, "product_id")
	if !ok {
		return
	}

	added, err := h.FavoriteService.Toggle(uid, productID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "product not found", nil)
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, response.CodeBadRequest, "invalid favorite input", nil)
		case errors.Is(err, service.ErrFavoriteConflict):
			respondError(c, response.CodeConflict, "product already favorited", nil)
		default:
			respondError(c, response.CodeInternal, "favorite toggle failed", err)
		}
		return
	}
	if added {
		response.Created(c, gin.H{"favorited": true})
		return
	}
	response.Success(c, gin.H{"favorited": false})
}

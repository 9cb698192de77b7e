package public

import (
	"github.com/feastline-api/internal/config"
	"github.com/feastline-api/internal/service"
)

// Handler bundles the services the public API needs.
type Handler struct {
	Config          *config.Config
	UserAuthService *service.UserAuthService
	CartService     *service.CartService
	OrderService    *service.OrderService
	FavoriteService *service.FavoriteService
	ProductService  *service.ProductService
	CategoryService *service.CategoryService
	ReviewService   *service.ReviewService
	PaymentService  *service.PaymentService
	AdService       *service.AdService
	ChefService     *service.ChefService
}

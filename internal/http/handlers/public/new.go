package public

import "github.com/feastline-api/internal/provider"

// New builds the public API handler from the container.
func New(c *provider.Container) *Handler {
	return &Handler{
		Config:          c.Config,
		UserAuthService: c.UserAuthService,
		CartService:     c.CartService,
		OrderService:    c.OrderService,
		FavoriteService: c.FavoriteService,
		ProductService:  c.ProductService,
		CategoryService: c.CategoryService,
		ReviewService:   c.ReviewService,
		PaymentService:  c.PaymentService,
		AdService:       c.AdService,
		ChefService:     c.ChefService,
	}
}

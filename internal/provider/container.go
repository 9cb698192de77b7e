package provider

import (
	"github.com/feastline-api/internal/authz"
	"github.com/feastline-api/internal/cache"
	"github.com/feastline-api/internal/config"
	"github.com/feastline-api/internal/logger"
	"github.com/feastline-api/internal/models"
	"github.com/feastline-api/internal/repository"
	"github.com/feastline-api/internal/service"
)

// Container wires repositories and services together.
type Container struct {
	Config *config.Config

	// Repositories
	UserRepo     repository.UserRepository
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository
	PaymentRepo  repository.PaymentRepository
	ReviewRepo   repository.ReviewRepository
	FavoriteRepo repository.FavoriteRepository
	AdRepo       repository.AdRepository
	ChefRepo     repository.ChefRepository

	// Services
	AuthzService    *authz.Service
	UserAuthService *service.UserAuthService
	ProductService  *service.ProductService
	CategoryService *service.CategoryService
	CartService     *service.CartService
	OrderService    *service.OrderService
	FavoriteService *service.FavoriteService
	ReviewService   *service.ReviewService
	PaymentService  *service.PaymentService
	AdService       *service.AdService
	ChefService     *service.ChefService
}

// NewContainer initializes the dependency container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.PaymentRepo = repository.NewPaymentRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.FavoriteRepo = repository.NewFavoriteRepository(db)
	c.AdRepo = repository.NewAdRepository(db)
	c.ChefRepo = repository.NewChefRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	mediaBaseURL := c.Config.Media.BaseURL

	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo, c.FavoriteRepo, mediaBaseURL)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo, mediaBaseURL)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(models.DB, c.OrderRepo, c.ProductRepo)
	c.FavoriteService = service.NewFavoriteService(c.FavoriteRepo, c.ProductRepo)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.ProductRepo)
	c.PaymentService = service.NewPaymentService(models.DB, c.PaymentRepo, c.OrderRepo)
	c.AdService = service.NewAdService(c.AdRepo, mediaBaseURL)
	c.ChefService = service.NewChefService(c.ChefRepo, mediaBaseURL)
}

package provider

import (
	"github.com/northcart/northcart/internal/cache"
	"github.com/northcart/northcart/internal/config"
	"github.com/northcart/northcart/internal/logger"
	"github.com/northcart/northcart/internal/models"
	"github.com/northcart/northcart/internal/queue"
	"github.com/northcart/northcart/internal/repository"
	"github.com/northcart/northcart/internal/service"
)

// Container wires repositories and services together.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo     repository.UserRepository
	BrandRepo    repository.BrandRepository
	ProductRepo  repository.ProductRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository
	ReviewRepo   repository.ReviewRepository
	WishlistRepo repository.WishlistRepository

	// Services
	AuthService     *service.AuthService
	EmailService    *service.EmailService
	ProductService  *service.ProductService
	BrandService    *service.BrandService
	CartService     *service.CartService
	OrderService    *service.OrderService
	ReviewService   *service.ReviewService
	WishlistService *service.WishlistService
}

// NewContainer initializes the dependency container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.BrandRepo = repository.NewBrandRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.WishlistRepo = repository.NewWishlistRepository(db)
}

func (c *Container) initServices() {
	tax := service.NewTaxCalculator(c.Config.Tax.Rate)

	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.BrandRepo, c.Config.Catalog.ProductCacheTTLSeconds)
	c.BrandService = service.NewBrandService(c.BrandRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, tax)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo, c.ProductRepo, c.QueueClient, tax)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.ProductRepo)
	c.WishlistService = service.NewWishlistService(c.WishlistRepo, c.ProductRepo)
}

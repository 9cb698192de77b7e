package service

import (
	"github.com/feastline-api/internal/models"
	"github.com/feastline-api/internal/repository"

	"github.com/shopspring/decimal"
)

// CartLineDetail one cart line with its live subtotal.
type CartLineDetail struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice models.Money    `json:"unit_price"`
	Subtotal  models.Money    `json:"subtotal"`
	Product   *models.Product `json:"product"`
}

// CartDetail a cart with lines and live total. The total always reflects
// current product prices, not prices at add time.
type CartDetail struct {
	ID    uint             `json:"id"`
	Lines []CartLineDetail `json:"items"`
	Total models.Money     `json:"total_price"`
}

// CartService cart operations.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// GetOrCreateCart returns the user's cart, creating an empty one if
// missing.
func (s *CartService) GetOrCreateCart(userID uint) (*CartDetail, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID}
		if err := s.cartRepo.Create(cart); err != nil {
			return nil, err
		}
	}
	return s.buildDetail(cart)
}

// AddItem adds a product to the cart, merging with an existing line.
// The cart must belong to the calling user.
func (s *CartService) AddItem(userID, cartID, productID uint, quantity int) (*CartDetail, error) {
	if userID == 0 || cartID == 0 || productID == 0 {
		return nil, ErrInvalidInput
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.requireOwnedCart(userID, cartID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsAvailable {
		return nil, ErrProductNotAvailable
	}

	if err := s.cartRepo.AddItem(cart.ID, productID, quantity); err != nil {
		return nil, err
	}
	return s.reload(cart.ID)
}

// RemoveItem removes a product line from the cart.
func (s *CartService) RemoveItem(userID, cartID, productID uint) (*CartDetail, error) {
	if userID == 0 || cartID == 0 || productID == 0 {
		return nil, ErrInvalidInput
	}
	cart, err := s.requireOwnedCart(userID, cartID)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.GetItem(cart.ID, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	if err := s.cartRepo.DeleteItem(cart.ID, productID); err != nil {
		return nil, err
	}
	return s.reload(cart.ID)
}

// Clear removes all lines from the cart.
func (s *CartService) Clear(userID, cartID uint) (*CartDetail, error) {
	if userID == 0 || cartID == 0 {
		return nil, ErrInvalidInput
	}
	cart, err := s.requireOwnedCart(userID, cartID)
	if err != nil {
		return nil, err
	}
	if err := s.cartRepo.ClearItems(cart.ID); err != nil {
		return nil, err
	}
	return s.reload(cart.ID)
}

func (s *CartService) requireOwnedCart(userID, cartID uint) (*models.Cart, error) {
	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	if cart.UserID != userID {
		return nil, ErrCartForbidden
	}
	return cart, nil
}

func (s *CartService) reload(cartID uint) (*CartDetail, error) {
	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	return s.buildDetail(cart)
}

func (s *CartService) buildDetail(cart *models.Cart) (*CartDetail, error) {
	items, err := s.cartRepo.ListItems(cart.ID)
	if err != nil {
		return nil, err
	}

	lines := make([]CartLineDetail, 0, len(items))
	total := decimal.Zero
	for _, item := range items {
		product := item.Product
		if product == nil || product.ID == 0 {
			p, err := s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			product = p
		}
		if product == nil {
			// product removed since add, drop the stale line
			_ = s.cartRepo.DeleteItem(cart.ID, item.ProductID)
			continue
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)
		lines = append(lines, CartLineDetail{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
			Subtotal:  models.NewMoneyFromDecimal(subtotal),
			Product:   product,
		})
	}

	return &CartDetail{
		ID:    cart.ID,
		Lines: lines,
		Total: models.NewMoneyFromDecimal(total),
	}, nil
}

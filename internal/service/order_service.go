package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/feastline-api/internal/constants"
	"github.com/feastline-api/internal/logger"
	"github.com/feastline-api/internal/models"
	"github.com/feastline-api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderLineInput one requested order line. Price, when given, is the
// unit price the client saw; it becomes the snapshot stored on the
// order item.
type OrderLineInput struct {
	ProductID uint         `json:"product_id"`
	Quantity  int          `json:"quantity"`
	Price     models.Money `json:"price"`
}

// CreateOrderInput order creation request.
type CreateOrderInput struct {
	UserID  uint
	Address string
	Note    string
	Items   []OrderLineInput
}

// OrderService order operations.
type OrderService struct {
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewOrderService creates an order service.
func NewOrderService(db *gorm.DB, orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *OrderService {
	return &OrderService{
		db:          db,
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// Create builds an order atomically. Every line is validated against a
// live product; unit prices are snapshotted onto the order items and
// the total is computed server side. The cart is left untouched; the
// client decides what to do with it after checkout.
func (s *OrderService) Create(input CreateOrderInput) (*models.Order, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	if len(input.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	ids := make([]uint, 0, len(input.Items))
	for _, line := range input.Items {
		if line.ProductID == 0 {
			return nil, ErrInvalidInput
		}
		if line.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if line.Price.Decimal.IsNegative() {
			return nil, ErrInvalidInput
		}
		ids = append(ids, line.ProductID)
	}

	products, err := s.productRepo.GetByIDs(ids)
	if err != nil {
		return nil, err
	}
	productByID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	total := decimal.Zero
	for _, line := range input.Items {
		product, ok := productByID[line.ProductID]
		if !ok {
			return nil, ErrProductNotFound
		}
		if !product.IsAvailable {
			return nil, ErrProductNotAvailable
		}

		unitPrice := line.Price.Decimal
		if unitPrice.IsZero() {
			unitPrice = product.Price.Decimal
		}
		subtotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		total = total.Add(subtotal)

		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       models.NewMoneyFromDecimal(unitPrice),
			Quantity:    line.Quantity,
		})
	}

	order := &models.Order{
		OrderNo:     generateOrderNo(),
		UserID:      input.UserID,
		Status:      constants.OrderStatusPending,
		TotalAmount: models.NewMoneyFromDecimal(total),
		Address:     input.Address,
		Note:        input.Note,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.WithTx(tx).Create(order, items)
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("order_created",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"user_id", input.UserID,
		"total", order.TotalAmount.String(),
	)
	return s.orderRepo.GetByID(order.ID)
}

// ListByUser returns the user's orders.
func (s *OrderService) ListByUser(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.UserID == 0 {
		return nil, 0, ErrInvalidInput
	}
	return s.orderRepo.ListByUser(filter)
}

// GetByIDAndUser returns an order owned by the user.
func (s *OrderService) GetByIDAndUser(id, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// Cancel moves a pending order to cancelled.
func (s *OrderService) Cancel(id, userID uint) (*models.Order, error) {
	return s.transition(id, userID, constants.OrderStatusCancelled)
}

// Complete moves a pending order to completed.
func (s *OrderService) Complete(id, userID uint) (*models.Order, error) {
	return s.transition(id, userID, constants.OrderStatusCompleted)
}

// transition enforces the only legal moves: Pending to Completed or
// Cancelled. Terminal states never change again.
func (s *OrderService) transition(id, userID uint, target string) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != constants.OrderStatusPending {
		return nil, ErrInvalidStatusChange
	}

	now := time.Now()
	updates := map[string]interface{}{}
	switch target {
	case constants.OrderStatusCompleted:
		updates["paid_at"] = now
	case constants.OrderStatusCancelled:
		updates["canceled_at"] = now
	default:
		return nil, ErrInvalidStatusChange
	}
	if err := s.orderRepo.UpdateStatus(order.ID, target, updates); err != nil {
		return nil, err
	}
	return s.orderRepo.GetByID(order.ID)
}

// generateOrderNo builds a sortable unique order number.
func generateOrderNo() string {
	return fmt.Sprintf("%s%06d", time.Now().Format("20060102150405"), rand.Intn(1000000))
}

package service

import (
	"time"

	"github.com/feastline-api/internal/constants"
	"github.com/feastline-api/internal/logger"
	"github.com/feastline-api/internal/models"
	"github.com/feastline-api/internal/repository"

	"gorm.io/gorm"
)

// CreatePaymentInput payment creation request.
type CreatePaymentInput struct {
	UserID  uint
	OrderID uint
	Method  string
}

// PaymentService payment operations.
type PaymentService struct {
	db          *gorm.DB
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
}

// NewPaymentService creates a payment service.
func NewPaymentService(db *gorm.DB, paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository) *PaymentService {
	return &PaymentService{
		db:          db,
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
	}
}

// Create records a payment against a pending order and completes the
// order in the same transaction. One payment per order.
func (s *PaymentService) Create(input CreatePaymentInput) (*models.Payment, error) {
	if input.UserID == 0 || input.OrderID == 0 {
		return nil, ErrInvalidInput
	}
	switch input.Method {
	case constants.PaymentMethodCard, constants.PaymentMethodCash, constants.PaymentMethodTransfer:
	default:
		return nil, ErrInvalidInput
	}

	order, err := s.orderRepo.GetByIDAndUser(input.OrderID, input.UserID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != constants.OrderStatusPending {
		return nil, ErrInvalidStatusChange
	}

	existing, err := s.paymentRepo.GetByOrderID(order.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPaymentExists
	}

	now := time.Now()
	payment := &models.Payment{
		OrderID: order.ID,
		UserID:  input.UserID,
		Amount:  order.TotalAmount,
		Method:  input.Method,
		Status:  constants.PaymentStatusCompleted,
		PaidAt:  &now,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.paymentRepo.WithTx(tx).Create(payment); err != nil {
			return err
		}
		return s.orderRepo.WithTx(tx).UpdateStatus(order.ID, constants.OrderStatusCompleted, map[string]interface{}{
			"paid_at": now,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("payment_recorded",
		"payment_id", payment.ID,
		"order_id", order.ID,
		"user_id", input.UserID,
		"amount", payment.Amount.String(),
		"method", payment.Method,
	)
	return payment, nil
}

// ListByUser returns the user's payments.
func (s *PaymentService) ListByUser(userID uint, page, pageSize int) ([]models.Payment, int64, error) {
	if userID == 0 {
		return nil, 0, ErrInvalidInput
	}
	return s.paymentRepo.ListByUser(userID, page, pageSize)
}

// GetByIDAndUser returns a payment owned by the user.
func (s *PaymentService) GetByIDAndUser(id, userID uint) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil || payment.UserID != userID {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

package service

import (
	"errors"
	"testing"

	"github.com/feastline-api/internal/constants"
	"github.com/feastline-api/internal/models"
	"github.com/feastline-api/internal/repository"

	"gorm.io/gorm"
)

func newPaymentServiceForTest(t *testing.T) (*PaymentService, *OrderService, *gorm.DB) {
	t.Helper()
	db := setupServiceTestDB(t)
	orderRepo := repository.NewOrderRepository(db)
	orderSvc := NewOrderService(db, orderRepo, repository.NewProductRepository(db))
	paymentSvc := NewPaymentService(db, repository.NewPaymentRepository(db), orderRepo)
	return paymentSvc, orderSvc, db
}

func createPendingOrder(t *testing.T, orderSvc *OrderService, db *gorm.DB, userID uint, name string) *models.Order {
	t.Helper()
	dish := createServiceTestProduct(t, db, name, 25, true)
	order, err := orderSvc.Create(CreateOrderInput{
		UserID: userID,
		Items:  []OrderLineInput{{ProductID: dish.ID, Quantity: 2, Price: dish.Price}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	return order
}

func TestPaymentCompletesOrder(t *testing.T) {
	paymentSvc, orderSvc, db := newPaymentServiceForTest(t)
	order := createPendingOrder(t, orderSvc, db, 601, "pay-dish")

	payment, err := paymentSvc.Create(CreatePaymentInput{
		UserID:  601,
		OrderID: order.ID,
		Method:  constants.PaymentMethodCard,
	})
	if err != nil {
		t.Fatalf("create payment failed: %v", err)
	}
	if payment.Status != constants.PaymentStatusCompleted {
		t.Fatalf("payment status want completed got %s", payment.Status)
	}
	if payment.Amount.String() != order.TotalAmount.String() {
		t.Fatalf("payment amount want %s got %s", order.TotalAmount.String(), payment.Amount.String())
	}

	paid, err := orderSvc.GetByIDAndUser(order.ID, 601)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if paid.Status != constants.OrderStatusCompleted {
		t.Fatalf("order status want Completed got %s", paid.Status)
	}
	if paid.PaidAt == nil {
		t.Fatal("expected paid_at set")
	}
}

func TestPaymentRejectsDuplicateAndForeignOrder(t *testing.T) {
	paymentSvc, orderSvc, db := newPaymentServiceForTest(t)
	order := createPendingOrder(t, orderSvc, db, 602, "dup-dish")

	if _, err := paymentSvc.Create(CreatePaymentInput{
		UserID:  603,
		OrderID: order.ID,
		Method:  constants.PaymentMethodCash,
	}); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for foreign order, got %v", err)
	}

	if _, err := paymentSvc.Create(CreatePaymentInput{
		UserID:  602,
		OrderID: order.ID,
		Method:  constants.PaymentMethodCash,
	}); err != nil {
		t.Fatalf("first payment failed: %v", err)
	}

	// order is completed now, a second payment is an invalid transition
	if _, err := paymentSvc.Create(CreatePaymentInput{
		UserID:  602,
		OrderID: order.ID,
		Method:  constants.PaymentMethodCash,
	}); !errors.Is(err, ErrInvalidStatusChange) {
		t.Fatalf("expected ErrInvalidStatusChange, got %v", err)
	}
}

func TestPaymentRejectsUnknownMethod(t *testing.T) {
	paymentSvc, orderSvc, db := newPaymentServiceForTest(t)
	order := createPendingOrder(t, orderSvc, db, 604, "method-dish")

	if _, err := paymentSvc.Create(CreatePaymentInput{
		UserID:  604,
		OrderID: order.ID,
		Method:  "crypto",
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

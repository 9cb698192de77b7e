package service

import (
	"errors"
	"testing"

	"github.com/feastline-api/internal/constants"
	"github.com/feastline-api/internal/models"
	"github.com/feastline-api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newOrderServiceForTest(t *testing.T) (*OrderService, *CartService, *gorm.DB) {
	t.Helper()
	db := setupServiceTestDB(t)
	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderSvc := NewOrderService(db, repository.NewOrderRepository(db), productRepo)
	cartSvc := NewCartService(cartRepo, productRepo)
	return orderSvc, cartSvc, db
}

func TestCreateOrderSnapshotsPriceAndComputesTotal(t *testing.T) {
	svc, _, db := newOrderServiceForTest(t)
	burger := createServiceTestProduct(t, db, "burger", 15, true)
	fries := createServiceTestProduct(t, db, "fries", 4, true)

	order, err := svc.Create(CreateOrderInput{
		UserID:  401,
		Address: "12 Dock Street",
		Items: []OrderLineInput{
			{ProductID: burger.ID, Quantity: 2, Price: burger.Price},
			{ProductID: fries.ID, Quantity: 3, Price: fries.Price},
		},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("status want Pending got %s", order.Status)
	}
	if order.OrderNo == "" {
		t.Fatal("expected order number")
	}
	// 2*15 + 3*4
	if order.TotalAmount.String() != "42.00" {
		t.Fatalf("total want 42.00 got %s", order.TotalAmount.String())
	}
	if len(order.Items) != 2 {
		t.Fatalf("items want 2 got %d", len(order.Items))
	}

	// later price edits must not change the stored snapshot
	if err := db.Model(&models.Product{}).Where("id = ?", burger.ID).
		Update("price", models.NewMoneyFromDecimal(decimal.NewFromInt(99))).Error; err != nil {
		t.Fatalf("reprice product failed: %v", err)
	}
	reloaded, err := svc.GetByIDAndUser(order.ID, 401)
	if err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	for _, item := range reloaded.Items {
		if item.ProductID == burger.ID && item.Price.String() != "15.00" {
			t.Fatalf("snapshot price want 15.00 got %s", item.Price.String())
		}
	}
}

func TestCreateOrderLeavesCartUntouched(t *testing.T) {
	svc, cartSvc, db := newOrderServiceForTest(t)
	noodle := createServiceTestProduct(t, db, "noodle", 8, true)

	cart, err := cartSvc.GetOrCreateCart(402)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if _, err := cartSvc.AddItem(402, cart.ID, noodle.ID, 2); err != nil {
		t.Fatalf("add to cart failed: %v", err)
	}

	if _, err := svc.Create(CreateOrderInput{
		UserID: 402,
		Items:  []OrderLineInput{{ProductID: noodle.ID, Quantity: 2, Price: noodle.Price}},
	}); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	detail, err := cartSvc.GetOrCreateCart(402)
	if err != nil {
		t.Fatalf("reload cart failed: %v", err)
	}
	if len(detail.Lines) != 1 {
		t.Fatalf("cart lines want 1 got %d", len(detail.Lines))
	}
	if detail.Lines[0].Quantity != 2 {
		t.Fatalf("cart quantity want 2 got %d", detail.Lines[0].Quantity)
	}
}

func TestCreateOrderRejectsBadLines(t *testing.T) {
	svc, _, db := newOrderServiceForTest(t)
	offMenu := createServiceTestProduct(t, db, "off-menu", 10, false)

	if _, err := svc.Create(CreateOrderInput{UserID: 403}); !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
	if _, err := svc.Create(CreateOrderInput{
		UserID: 403,
		Items:  []OrderLineInput{{ProductID: 999999, Quantity: 1}},
	}); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
	if _, err := svc.Create(CreateOrderInput{
		UserID: 403,
		Items:  []OrderLineInput{{ProductID: offMenu.ID, Quantity: 1}},
	}); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("expected ErrProductNotAvailable, got %v", err)
	}
	if _, err := svc.Create(CreateOrderInput{
		UserID: 403,
		Items:  []OrderLineInput{{ProductID: offMenu.ID, Quantity: 0}},
	}); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}

	// a failed create must leave no partial rows behind
	var orderCount int64
	if err := db.Model(&models.Order{}).Where("user_id = ?", 403).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("orders want 0 got %d", orderCount)
	}
	var itemCount int64
	if err := db.Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ?", 403).Count(&itemCount).Error; err != nil {
		t.Fatalf("count order items failed: %v", err)
	}
	if itemCount != 0 {
		t.Fatalf("order items want 0 got %d", itemCount)
	}
}

func TestCreateOrderRejectsNegativeLinePrice(t *testing.T) {
	svc, _, db := newOrderServiceForTest(t)
	dish := createServiceTestProduct(t, db, "priced-dish", 5, true)

	if _, err := svc.Create(CreateOrderInput{
		UserID: 407,
		Items: []OrderLineInput{{
			ProductID: dish.ID,
			Quantity:  3,
			Price:     models.NewMoneyFromDecimal(decimal.NewFromInt(-5)),
		}},
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative price, got %v", err)
	}

	var count int64
	if err := db.Model(&models.Order{}).Where("user_id = ?", 407).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("orders want 0 got %d", count)
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	svc, _, db := newOrderServiceForTest(t)
	dish := createServiceTestProduct(t, db, "transition-dish", 20, true)

	order, err := svc.Create(CreateOrderInput{
		UserID: 404,
		Items:  []OrderLineInput{{ProductID: dish.ID, Quantity: 1, Price: dish.Price}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	cancelled, err := svc.Cancel(order.ID, 404)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if cancelled.Status != constants.OrderStatusCancelled {
		t.Fatalf("status want Cancelled got %s", cancelled.Status)
	}
	if cancelled.CanceledAt == nil {
		t.Fatal("expected canceled_at set")
	}

	// terminal states stay terminal
	if _, err := svc.Cancel(order.ID, 404); !errors.Is(err, ErrInvalidStatusChange) {
		t.Fatalf("expected ErrInvalidStatusChange on double cancel, got %v", err)
	}
	if _, err := svc.Complete(order.ID, 404); !errors.Is(err, ErrInvalidStatusChange) {
		t.Fatalf("expected ErrInvalidStatusChange on complete after cancel, got %v", err)
	}
}

func TestOrderScopedToOwner(t *testing.T) {
	svc, _, db := newOrderServiceForTest(t)
	dish := createServiceTestProduct(t, db, "scoped-dish", 11, true)

	order, err := svc.Create(CreateOrderInput{
		UserID: 405,
		Items:  []OrderLineInput{{ProductID: dish.ID, Quantity: 1, Price: dish.Price}},
	})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	if _, err := svc.GetByIDAndUser(order.ID, 406); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for other user, got %v", err)
	}
	if _, err := svc.Cancel(order.ID, 406); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound on foreign cancel, got %v", err)
	}
}

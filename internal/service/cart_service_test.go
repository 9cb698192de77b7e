package service

import (
	"errors"
	"testing"

	"github.com/feastline-api/internal/repository"
)

func newCartServiceForTest(t *testing.T) (*CartService, func(name string, price int64) uint) {
	t.Helper()
	db := setupServiceTestDB(t)
	svc := NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))
	createProduct := func(name string, price int64) uint {
		return createServiceTestProduct(t, db, name, price, true).ID
	}
	return svc, createProduct
}

func TestGetOrCreateCartCreatesEmptyCart(t *testing.T) {
	svc, _ := newCartServiceForTest(t)

	cart, err := svc.GetOrCreateCart(301)
	if err != nil {
		t.Fatalf("get or create failed: %v", err)
	}
	if cart.ID == 0 {
		t.Fatal("expected persisted cart id")
	}
	if len(cart.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(cart.Lines))
	}
	if cart.Total.String() != "0.00" {
		t.Fatalf("total want 0.00 got %s", cart.Total.String())
	}

	again, err := svc.GetOrCreateCart(301)
	if err != nil {
		t.Fatalf("second get failed: %v", err)
	}
	if again.ID != cart.ID {
		t.Fatalf("expected same cart, got %d and %d", cart.ID, again.ID)
	}
}

func TestAddItemMergesAndComputesTotal(t *testing.T) {
	svc, createProduct := newCartServiceForTest(t)
	pizza := createProduct("pizza", 12)
	soup := createProduct("soup", 5)

	cart, err := svc.GetOrCreateCart(302)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}

	if _, err := svc.AddItem(302, cart.ID, pizza, 2); err != nil {
		t.Fatalf("add pizza failed: %v", err)
	}
	if _, err := svc.AddItem(302, cart.ID, soup, 1); err != nil {
		t.Fatalf("add soup failed: %v", err)
	}
	detail, err := svc.AddItem(302, cart.ID, pizza, 1)
	if err != nil {
		t.Fatalf("merge pizza failed: %v", err)
	}

	if len(detail.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(detail.Lines))
	}
	for _, line := range detail.Lines {
		if line.ProductID == pizza && line.Quantity != 3 {
			t.Fatalf("pizza quantity want 3 got %d", line.Quantity)
		}
	}
	// 3*12 + 1*5
	if detail.Total.String() != "41.00" {
		t.Fatalf("total want 41.00 got %s", detail.Total.String())
	}
}

func TestAddItemRejectsBadInput(t *testing.T) {
	svc, createProduct := newCartServiceForTest(t)
	productID := createProduct("salad", 7)

	cart, err := svc.GetOrCreateCart(303)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}

	if _, err := svc.AddItem(303, cart.ID, productID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := svc.AddItem(303, cart.ID, 999999, 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCartOwnershipEnforced(t *testing.T) {
	svc, createProduct := newCartServiceForTest(t)
	productID := createProduct("wrap", 9)

	owner, err := svc.GetOrCreateCart(304)
	if err != nil {
		t.Fatalf("get owner cart failed: %v", err)
	}

	if _, err := svc.AddItem(305, owner.ID, productID, 1); !errors.Is(err, ErrCartForbidden) {
		t.Fatalf("expected ErrCartForbidden on add, got %v", err)
	}
	if _, err := svc.RemoveItem(305, owner.ID, productID); !errors.Is(err, ErrCartForbidden) {
		t.Fatalf("expected ErrCartForbidden on remove, got %v", err)
	}
	if _, err := svc.Clear(305, owner.ID); !errors.Is(err, ErrCartForbidden) {
		t.Fatalf("expected ErrCartForbidden on clear, got %v", err)
	}
}

func TestRemoveItemMissingLine(t *testing.T) {
	svc, createProduct := newCartServiceForTest(t)
	productID := createProduct("tea", 3)

	cart, err := svc.GetOrCreateCart(306)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}

	if _, err := svc.RemoveItem(306, cart.ID, productID); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	svc, createProduct := newCartServiceForTest(t)
	first := createProduct("clear-a", 4)
	second := createProduct("clear-b", 6)

	cart, err := svc.GetOrCreateCart(307)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if _, err := svc.AddItem(307, cart.ID, first, 1); err != nil {
		t.Fatalf("add first failed: %v", err)
	}
	if _, err := svc.AddItem(307, cart.ID, second, 2); err != nil {
		t.Fatalf("add second failed: %v", err)
	}

	detail, err := svc.Clear(307, cart.ID)
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if len(detail.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(detail.Lines))
	}
	if detail.Total.String() != "0.00" {
		t.Fatalf("total want 0.00 got %s", detail.Total.String())
	}
}

package repository

import (
	"testing"

	"github.com/feastline-api/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T) (*GormCartRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate cart tables failed: %v", err)
	}
	return NewCartRepository(db), db
}

func createCartTestProduct(t *testing.T, db *gorm.DB, name string, price int64) *models.Product {
	t.Helper()
	categoryID := uint(1)
	product := &models.Product{
		CategoryID:  &categoryID,
		Name:        name,
		Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		IsAvailable: true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func createTestCart(t *testing.T, repo *GormCartRepository, userID uint) *models.Cart {
	t.Helper()
	cart := &models.Cart{UserID: userID}
	if err := repo.Create(cart); err != nil {
		t.Fatalf("create cart failed: %v", err)
	}
	return cart
}

func TestAddItemMergesQuantityForSameProduct(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := createCartTestProduct(t, db, "merge-target", 10)
	cart := createTestCart(t, repo, 101)

	if err := repo.AddItem(cart.ID, product.ID, 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := repo.AddItem(cart.ID, product.ID, 3); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	item, err := repo.GetItem(cart.ID, product.ID)
	if err != nil {
		t.Fatalf("get item failed: %v", err)
	}
	if item == nil {
		t.Fatal("expected merged item, got nil")
	}
	if item.Quantity != 5 {
		t.Fatalf("quantity want 5 got %d", item.Quantity)
	}

	items, err := repo.ListItems(cart.ID)
	if err != nil {
		t.Fatalf("list items failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected single merged line, got %d", len(items))
	}
}

func TestAddItemKeepsLinesPerProduct(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	first := createCartTestProduct(t, db, "line-a", 5)
	second := createCartTestProduct(t, db, "line-b", 8)
	cart := createTestCart(t, repo, 102)

	if err := repo.AddItem(cart.ID, first.ID, 1); err != nil {
		t.Fatalf("add first failed: %v", err)
	}
	if err := repo.AddItem(cart.ID, second.ID, 4); err != nil {
		t.Fatalf("add second failed: %v", err)
	}

	items, err := repo.ListItems(cart.ID)
	if err != nil {
		t.Fatalf("list items failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
}

func TestDeleteItemAndClear(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	first := createCartTestProduct(t, db, "remove-a", 5)
	second := createCartTestProduct(t, db, "remove-b", 6)
	cart := createTestCart(t, repo, 103)

	if err := repo.AddItem(cart.ID, first.ID, 1); err != nil {
		t.Fatalf("add first failed: %v", err)
	}
	if err := repo.AddItem(cart.ID, second.ID, 1); err != nil {
		t.Fatalf("add second failed: %v", err)
	}

	if err := repo.DeleteItem(cart.ID, first.ID); err != nil {
		t.Fatalf("delete item failed: %v", err)
	}
	item, err := repo.GetItem(cart.ID, first.ID)
	if err != nil {
		t.Fatalf("get deleted item failed: %v", err)
	}
	if item != nil {
		t.Fatal("expected deleted item to be gone")
	}

	if err := repo.ClearItems(cart.ID); err != nil {
		t.Fatalf("clear items failed: %v", err)
	}
	items, err := repo.ListItems(cart.ID)
	if err != nil {
		t.Fatalf("list after clear failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(items))
	}
}

func TestGetByUserReturnsNilWhenMissing(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)

	cart, err := repo.GetByUser(999999)
	if err != nil {
		t.Fatalf("get by user failed: %v", err)
	}
	if cart != nil {
		t.Fatal("expected nil cart for unknown user")
	}
}

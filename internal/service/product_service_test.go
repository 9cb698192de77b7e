package service

import (
	"errors"
	"testing"

	"github.com/feastline-api/internal/models"
	"github.com/feastline-api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newProductServiceForTest(t *testing.T) (*ProductService, *gorm.DB) {
	t.Helper()
	db := setupServiceTestDB(t)
	svc := NewProductService(
		repository.NewProductRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewFavoriteRepository(db),
		testConfig().Media.BaseURL,
	)
	return svc, db
}

func createServiceTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func strPtr(s string) *string { return &s }

func moneyPtr(v float64) *models.Money {
	m := models.NewMoneyFromDecimal(decimal.NewFromFloat(v))
	return &m
}

func TestCreateProductStoresDetailFields(t *testing.T) {
	svc, db := newProductServiceForTest(t)
	category := createServiceTestCategory(t, db, "mains")

	quantity := 12
	product, err := svc.Create(SaveProductInput{
		CategoryID:  &category.ID,
		Name:        strPtr("Lamb Tagine"),
		Description: strPtr("Slow cooked."),
		Text:        strPtr("Served with couscous."),
		Ingredients: strPtr("lamb, apricot, almond"),
		Allergens:   strPtr("nuts"),
		Price:       moneyPtr(18.50),
		OldPrice:    moneyPtr(21.00),
		Discount:    moneyPtr(2.50),
		Quantity:    &quantity,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.CategoryID == nil || *product.CategoryID != category.ID {
		t.Fatal("expected category reference on product")
	}
	if product.Ingredients != "lamb, apricot, almond" || product.Allergens != "nuts" {
		t.Fatal("detail fields not stored")
	}
	if !product.OldPrice.Decimal.Equal(decimal.NewFromFloat(21.00)) {
		t.Fatalf("old price mismatch: %s", product.OldPrice.Decimal)
	}
	if product.Quantity != 12 {
		t.Fatalf("quantity mismatch: %d", product.Quantity)
	}

	view, err := svc.Get(0, product.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if view.Text != "Served with couscous." || view.Quantity != 12 {
		t.Fatal("view does not expose detail fields")
	}
	if !view.Discount.Decimal.Equal(decimal.NewFromFloat(2.50)) {
		t.Fatalf("view discount mismatch: %s", view.Discount.Decimal)
	}
}

func TestCreateProductWithoutCategory(t *testing.T) {
	svc, _ := newProductServiceForTest(t)

	product, err := svc.Create(SaveProductInput{
		Name:  strPtr("Daily Special"),
		Price: moneyPtr(9.00),
	})
	if err != nil {
		t.Fatalf("create without category failed: %v", err)
	}
	if product.CategoryID != nil {
		t.Fatal("expected nil category reference")
	}

	view, err := svc.Get(0, product.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if view.CategoryID != nil || view.Category != nil {
		t.Fatal("view should carry no category")
	}
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	svc, db := newProductServiceForTest(t)
	category := createServiceTestCategory(t, db, "starters")

	if _, err := svc.Create(SaveProductInput{
		CategoryID: &category.ID,
		Name:       strPtr("Bad Price"),
		Price:      moneyPtr(-4.20),
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	negativeStock := -3
	if _, err := svc.Create(SaveProductInput{
		CategoryID: &category.ID,
		Name:       strPtr("Bad Stock"),
		Price:      moneyPtr(4.20),
		Quantity:   &negativeStock,
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative stock, got %v", err)
	}

	var count int64
	if err := db.Model(&models.Product{}).Where("name IN ?", []string{"Bad Price", "Bad Stock"}).Count(&count).Error; err != nil {
		t.Fatalf("count products failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("rejected products must not be stored, found %d", count)
	}
}

func TestUpdateProductRejectsNegativePrice(t *testing.T) {
	svc, db := newProductServiceForTest(t)
	category := createServiceTestCategory(t, db, "desserts")

	product, err := svc.Create(SaveProductInput{
		CategoryID: &category.ID,
		Name:       strPtr("Panna Cotta"),
		Price:      moneyPtr(6.00),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Update(product.ID, SaveProductInput{
		Price: moneyPtr(-1.00),
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Update(product.ID, SaveProductInput{
		OldPrice: moneyPtr(-7.00),
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative old price, got %v", err)
	}

	reloaded, err := svc.Get(0, product.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !reloaded.Price.Decimal.Equal(decimal.NewFromFloat(6.00)) {
		t.Fatalf("price must be unchanged after rejected update, got %s", reloaded.Price.Decimal)
	}
}

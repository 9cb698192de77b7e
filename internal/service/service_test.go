package service

import (
	"testing"

	"github.com/feastline-api/internal/config"
	"github.com/feastline-api/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Chef{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Review{},
		&models.Favorite{},
		&models.Ad{},
	); err != nil {
		t.Fatalf("migrate tables failed: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			SecretKey:          "test-secret",
			AccessExpireHours:  1,
			RefreshExpireHours: 2,
		},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{
				MinLength:     8,
				RequireLower:  true,
				RequireNumber: true,
			},
		},
		Media: config.MediaConfig{
			BaseURL: "http://media.test/uploads",
		},
	}
}

func createServiceTestProduct(t *testing.T, db *gorm.DB, name string, price int64, available bool) *models.Product {
	t.Helper()
	categoryID := uint(1)
	product := &models.Product{
		CategoryID:  &categoryID,
		Name:        name,
		Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		IsAvailable: available,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	// The model's gorm:"default:true" makes Create drop a zero-value
	// false, so persist the flag explicitly.
	if err := db.Model(product).Update("is_available", available).Error; err != nil {
		t.Fatalf("set product availability failed: %v", err)
	}
	return product
}

package repository

import (
	"testing"

	"github.com/feastline-api/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupFavoriteRepositoryTest(t *testing.T) *GormFavoriteRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}, &models.Favorite{}); err != nil {
		t.Fatalf("migrate favorite tables failed: %v", err)
	}
	return NewFavoriteRepository(db)
}

func TestFavoriteCreateLookupDelete(t *testing.T) {
	repo := setupFavoriteRepositoryTest(t)

	if err := repo.Create(&models.Favorite{UserID: 201, ProductID: 11}); err != nil {
		t.Fatalf("create favorite failed: %v", err)
	}

	favorite, err := repo.GetByUserAndProduct(201, 11)
	if err != nil {
		t.Fatalf("get favorite failed: %v", err)
	}
	if favorite == nil {
		t.Fatal("expected favorite, got nil")
	}

	if err := repo.DeleteByUserAndProduct(201, 11); err != nil {
		t.Fatalf("delete favorite failed: %v", err)
	}
	favorite, err = repo.GetByUserAndProduct(201, 11)
	if err != nil {
		t.Fatalf("get after delete failed: %v", err)
	}
	if favorite != nil {
		t.Fatal("expected favorite to be gone")
	}
}

func TestProductIDSetByUser(t *testing.T) {
	repo := setupFavoriteRepositoryTest(t)

	if err := repo.Create(&models.Favorite{UserID: 202, ProductID: 21}); err != nil {
		t.Fatalf("create favorite failed: %v", err)
	}
	if err := repo.Create(&models.Favorite{UserID: 202, ProductID: 22}); err != nil {
		t.Fatalf("create favorite failed: %v", err)
	}
	if err := repo.Create(&models.Favorite{UserID: 203, ProductID: 23}); err != nil {
		t.Fatalf("create other user favorite failed: %v", err)
	}

	set, err := repo.ProductIDSetByUser(202)
	if err != nil {
		t.Fatalf("product id set failed: %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("set size want 2 got %d", len(set))
	}
	if _, ok := set[21]; !ok {
		t.Fatal("expected product 21 in set")
	}
	if _, ok := set[23]; ok {
		t.Fatal("did not expect other user's product in set")
	}

	empty, err := repo.ProductIDSetByUser(0)
	if err != nil {
		t.Fatalf("anonymous set failed: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("anonymous set should be empty, got %d", len(empty))
	}
}

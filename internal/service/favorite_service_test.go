package service

import (
	"errors"
	"testing"

	"github.com/feastline-api/internal/models"
	"github.com/feastline-api/internal/repository"
)

func newFavoriteServiceForTest(t *testing.T) (*FavoriteService, func(name string) uint) {
	t.Helper()
	db := setupServiceTestDB(t)
	svc := NewFavoriteService(repository.NewFavoriteRepository(db), repository.NewProductRepository(db))
	createProduct := func(name string) uint {
		return createServiceTestProduct(t, db, name, 10, true).ID
	}
	return svc, createProduct
}

// staleReadFavoriteRepo reports no favorite on the existence check even
// when a row exists, so the insert has to run into the unique index the
// way a lost concurrent toggle would.
type staleReadFavoriteRepo struct {
	*repository.GormFavoriteRepository
}

func (staleReadFavoriteRepo) GetByUserAndProduct(userID, productID uint) (*models.Favorite, error) {
	return nil, nil
}

func TestToggleAddsThenRemoves(t *testing.T) {
	svc, createProduct := newFavoriteServiceForTest(t)
	productID := createProduct("toggle-dish")

	added, err := svc.Toggle(501, productID)
	if err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}
	if !added {
		t.Fatal("first toggle should add")
	}

	favorited, err := svc.IsFavorited(501, productID)
	if err != nil {
		t.Fatalf("is favorited failed: %v", err)
	}
	if !favorited {
		t.Fatal("expected favorited after add")
	}

	added, err = svc.Toggle(501, productID)
	if err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if added {
		t.Fatal("second toggle should remove")
	}

	favorited, err = svc.IsFavorited(501, productID)
	if err != nil {
		t.Fatalf("is favorited after remove failed: %v", err)
	}
	if favorited {
		t.Fatal("expected not favorited after remove")
	}
}

func TestToggleUnknownProduct(t *testing.T) {
	svc, _ := newFavoriteServiceForTest(t)

	if _, err := svc.Toggle(502, 999999); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestToggleDuplicateInsertReturnsConflict(t *testing.T) {
	db := setupServiceTestDB(t)
	favRepo := repository.NewFavoriteRepository(db)
	product := createServiceTestProduct(t, db, "conflict-dish", 10, true)

	if err := favRepo.Create(&models.Favorite{UserID: 505, ProductID: product.ID}); err != nil {
		t.Fatalf("seed favorite failed: %v", err)
	}

	svc := NewFavoriteService(staleReadFavoriteRepo{favRepo}, repository.NewProductRepository(db))
	if _, err := svc.Toggle(505, product.ID); !errors.Is(err, ErrFavoriteConflict) {
		t.Fatalf("expected ErrFavoriteConflict, got %v", err)
	}
}

func TestToggleReAddAfterRemove(t *testing.T) {
	svc, createProduct := newFavoriteServiceForTest(t)
	productID := createProduct("readd-dish")

	if _, err := svc.Toggle(506, productID); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.Toggle(506, productID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	added, err := svc.Toggle(506, productID)
	if err != nil {
		t.Fatalf("re-add failed: %v", err)
	}
	if !added {
		t.Fatal("re-add should favorite again")
	}
}

func TestFavoriteSetIsPerUser(t *testing.T) {
	svc, createProduct := newFavoriteServiceForTest(t)
	mine := createProduct("set-mine")
	other := createProduct("set-other")

	if _, err := svc.Toggle(503, mine); err != nil {
		t.Fatalf("toggle mine failed: %v", err)
	}
	if _, err := svc.Toggle(504, other); err != nil {
		t.Fatalf("toggle other failed: %v", err)
	}

	set, err := svc.FavoriteSet(503)
	if err != nil {
		t.Fatalf("favorite set failed: %v", err)
	}
	if _, ok := set[mine]; !ok {
		t.Fatal("expected own favorite in set")
	}
	if _, ok := set[other]; ok {
		t.Fatal("did not expect other user's favorite in set")
	}

	anonymous, err := svc.FavoriteSet(0)
	if err != nil {
		t.Fatalf("anonymous favorite set failed: %v", err)
	}
	if len(anonymous) != 0 {
		t.Fatalf("anonymous set should be empty, got %d", len(anonymous))
	}
}

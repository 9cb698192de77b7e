package service

import (
	"errors"
	"strings"

	"github.com/feastline-api/internal/models"
	"github.com/feastline-api/internal/repository"

	"gorm.io/gorm"
)

// isUniqueViolation reports whether err is a unique constraint failure.
// The sqlite and postgres drivers word it differently, so fall back to
// message matching when the translated sentinel is absent.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

// FavoriteService favorite operations.
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
}

// NewFavoriteService creates a favorite service.
func NewFavoriteService(favoriteRepo repository.FavoriteRepository, productRepo repository.ProductRepository) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		productRepo:  productRepo,
	}
}

// Toggle flips the favorite state for the product. It reports true when
// the product ended up favorited, false when the toggle removed it.
func (s *FavoriteService) Toggle(userID, productID uint) (bool, error) {
	if userID == 0 || productID == 0 {
		return false, ErrInvalidInput
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, ErrProductNotFound
	}

	existing, err := s.favoriteRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if err := s.favoriteRepo.DeleteByUserAndProduct(userID, productID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.favoriteRepo.Create(&models.Favorite{UserID: userID, ProductID: productID}); err != nil {
		// two concurrent toggles can both miss the existence check;
		// the unique index decides the race
		if isUniqueViolation(err) {
			return false, ErrFavoriteConflict
		}
		return false, err
	}
	return true, nil
}

// ListByUser returns the user's favorites with products.
func (s *FavoriteService) ListByUser(userID uint) ([]models.Favorite, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.favoriteRepo.ListByUser(userID)
}

// FavoriteSet returns the product ids the user favorited. An anonymous
// user gets an empty set.
func (s *FavoriteService) FavoriteSet(userID uint) (map[uint]struct{}, error) {
	return s.favoriteRepo.ProductIDSetByUser(userID)
}

// IsFavorited reports whether the user has favorited the product.
func (s *FavoriteService) IsFavorited(userID, productID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	favorite, err := s.favoriteRepo.GetByUserAndProduct(userID, productID)
	if err != nil {
		return false, err
	}
	return favorite != nil, nil
}

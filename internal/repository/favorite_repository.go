package repository

import (
	"errors"

	"github.com/feastline-api/internal/models"

	"gorm.io/gorm"
)

// FavoriteRepository favorite data access interface.
type FavoriteRepository interface {
	Create(favorite *models.Favorite) error
	GetByUserAndProduct(userID, productID uint) (*models.Favorite, error)
	ListByUser(userID uint) ([]models.Favorite, error)
	ProductIDSetByUser(userID uint) (map[uint]struct{}, error)
	DeleteByUserAndProduct(userID, productID uint) error
	WithTx(tx *gorm.DB) *GormFavoriteRepository
}

// GormFavoriteRepository GORM implementation.
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a favorite repository.
func NewFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormFavoriteRepository) WithTx(tx *gorm.DB) *GormFavoriteRepository {
	if tx == nil {
		return r
	}
	return &GormFavoriteRepository{db: tx}
}

// Create inserts a favorite.
func (r *GormFavoriteRepository) Create(favorite *models.Favorite) error {
	return r.db.Create(favorite).Error
}

// GetByUserAndProduct fetches a favorite row if present.
func (r *GormFavoriteRepository) GetByUserAndProduct(userID, productID uint) (*models.Favorite, error) {
	var favorite models.Favorite
	if err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).
		First(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &favorite, nil
}

// ListByUser returns a user's favorites with products.
func (r *GormFavoriteRepository) ListByUser(userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := r.db.Preload("Product").Preload("Product.Category").
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

// ProductIDSetByUser returns the set of product ids the user favorited.
func (r *GormFavoriteRepository) ProductIDSetByUser(userID uint) (map[uint]struct{}, error) {
	if userID == 0 {
		return map[uint]struct{}{}, nil
	}
	var ids []uint
	if err := r.db.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("product_id", &ids).Error; err != nil {
		return nil, err
	}
	set := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// DeleteByUserAndProduct removes a favorite row. The delete is hard:
// a soft-deleted row would still occupy the (user_id, product_id)
// unique index and block re-favoriting.
func (r *GormFavoriteRepository) DeleteByUserAndProduct(userID, productID uint) error {
	return r.db.Unscoped().Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.Favorite{}).Error
}

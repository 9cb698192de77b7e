package repository

import (
	"errors"
	"time"

	"github.com/feastline-api/internal/models"

	"gorm.io/gorm"
)

// AdRepository ad data access interface.
type AdRepository interface {
	ListActive() ([]models.Ad, error)
	GetByID(id uint) (*models.Ad, error)
	Create(ad *models.Ad) error
	Update(id uint, updates map[string]interface{}) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) *GormAdRepository
}

// GormAdRepository GORM implementation.
type GormAdRepository struct {
	db *gorm.DB
}

// NewAdRepository creates an ad repository.
func NewAdRepository(db *gorm.DB) *GormAdRepository {
	return &GormAdRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormAdRepository) WithTx(tx *gorm.DB) *GormAdRepository {
	if tx == nil {
		return r
	}
	return &GormAdRepository{db: tx}
}

// ListActive returns active ads inside their display window, ordered
// by sort weight. A nil StartAt or EndAt leaves that side unbounded.
func (r *GormAdRepository) ListActive() ([]models.Ad, error) {
	now := time.Now()
	var ads []models.Ad
	if err := r.db.Where("is_active = ?", true).
		Where("start_at IS NULL OR start_at <= ?", now).
		Where("end_at IS NULL OR end_at >= ?", now).
		Order("sort_order asc, id desc").
		Find(&ads).Error; err != nil {
		return nil, err
	}
	return ads, nil
}

// GetByID fetches an ad by id.
func (r *GormAdRepository) GetByID(id uint) (*models.Ad, error) {
	var ad models.Ad
	if err := r.db.First(&ad, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ad, nil
}

// Create inserts an ad.
func (r *GormAdRepository) Create(ad *models.Ad) error {
	return r.db.Create(ad).Error
}

// Update applies column updates to an ad.
func (r *GormAdRepository) Update(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.Ad{}).Where("id = ?", id).Updates(updates).Error
}

// Delete soft deletes an ad.
func (r *GormAdRepository) Delete(id uint) error {
	return r.db.Delete(&models.Ad{}, id).Error
}

package repository

import (
	"errors"

	"github.com/feastline-api/internal/models"

	"gorm.io/gorm"
)

// ChefRepository chef data access interface.
type ChefRepository interface {
	List() ([]models.Chef, error)
	GetByID(id uint) (*models.Chef, error)
	Create(chef *models.Chef) error
	Update(id uint, updates map[string]interface{}) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) *GormChefRepository
}

// GormChefRepository GORM implementation.
type GormChefRepository struct {
	db *gorm.DB
}

// NewChefRepository creates a chef repository.
func NewChefRepository(db *gorm.DB) *GormChefRepository {
	return &GormChefRepository{db: db}
}

// WithTx binds a transaction.
func (r *GormChefRepository) WithTx(tx *gorm.DB) *GormChefRepository {
	if tx == nil {
		return r
	}
	return &GormChefRepository{db: tx}
}

// List returns all chefs.
func (r *GormChefRepository) List() ([]models.Chef, error) {
	var chefs []models.Chef
	if err := r.db.Order("id asc").Find(&chefs).Error; err != nil {
		return nil, err
	}
	return chefs, nil
}

// GetByID fetches a chef by id.
func (r *GormChefRepository) GetByID(id uint) (*models.Chef, error) {
	var chef models.Chef
	if err := r.db.First(&chef, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &chef, nil
}

// Create inserts a chef.
func (r *GormChefRepository) Create(chef *models.Chef) error {
	return r.db.Create(chef).Error
}

// Update applies column updates to a chef.
func (r *GormChefRepository) Update(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.Chef{}).Where("id = ?", id).Updates(updates).Error
}

// Delete soft deletes a chef.
func (r *GormChefRepository) Delete(id uint) error {
	return r.db.Delete(&models.Chef{}, id).Error
}

package service

import (
	"strings"

	"github.com/feastline-api/internal/models"
	"github.com/feastline-api/internal/repository"
)

// SaveCategoryInput create/update payload.
type SaveCategoryInput struct {
	Name      *string
	Image     *string
	SortOrder *int
}

// CategoryService category operations.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	mediaBaseURL string
}

// NewCategoryService creates a category service.
func NewCategoryService(categoryRepo repository.CategoryRepository, mediaBaseURL string) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		mediaBaseURL: mediaBaseURL,
	}
}

// List returns all categories with resolved images.
func (s *CategoryService) List() ([]models.Category, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	for i := range categories {
		categories[i].Image = resolveImageURL(s.mediaBaseURL, categories[i].Image)
	}
	return categories, nil
}

// Get returns a category by id.
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	category.Image = resolveImageURL(s.mediaBaseURL, category.Image)
	return category, nil
}

// Create inserts a category. Names are unique.
func (s *CategoryService) Create(input SaveCategoryInput) (*models.Category, error) {
	if input.Name == nil {
		return nil, ErrInvalidInput
	}
	name := strings.TrimSpace(*input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	existing, err := s.categoryRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCategoryExists
	}

	category := &models.Category{Name: name}
	if input.Image != nil {
		category.Image = *input.Image
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update applies a partial category update.
func (s *CategoryService) Update(id uint, input SaveCategoryInput) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrInvalidInput
		}
		if name != category.Name {
			existing, err := s.categoryRepo.GetByName(name)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, ErrCategoryExists
			}
			updates["name"] = name
		}
	}
	if input.Image != nil {
		updates["image"] = *input.Image
	}
	if input.SortOrder != nil {
		updates["sort_order"] = *input.SortOrder
	}
	if err := s.categoryRepo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.categoryRepo.GetByID(id)
}

// Delete soft deletes a category.
func (s *CategoryService) Delete(id uint) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return s.categoryRepo.Delete(id)
}

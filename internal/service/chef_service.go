package service

import (
	"strings"

	"github.com/feastline-api/internal/models"
	"github.com/feastline-api/internal/repository"
)

// SaveChefInput create/update payload.
type SaveChefInput struct {
	Name      *string
	Bio       *string
	Image     *string
	Specialty *string
	Rating    *float64
}

// ChefService chef profile operations.
type ChefService struct {
	chefRepo     repository.ChefRepository
	mediaBaseURL string
}

// NewChefService creates a chef service.
func NewChefService(chefRepo repository.ChefRepository, mediaBaseURL string) *ChefService {
	return &ChefService{
		chefRepo:     chefRepo,
		mediaBaseURL: mediaBaseURL,
	}
}

// List returns all chefs with resolved images.
func (s *ChefService) List() ([]models.Chef, error) {
	chefs, err := s.chefRepo.List()
	if err != nil {
		return nil, err
	}
	for i := range chefs {
		chefs[i].Image = resolveImageURL(s.mediaBaseURL, chefs[i].Image)
	}
	return chefs, nil
}

// Get returns a chef by id.
func (s *ChefService) Get(id uint) (*models.Chef, error) {
	chef, err := s.chefRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if chef == nil {
		return nil, ErrChefNotFound
	}
	chef.Image = resolveImageURL(s.mediaBaseURL, chef.Image)
	return chef, nil
}

// Create inserts a chef.
func (s *ChefService) Create(input SaveChefInput) (*models.Chef, error) {
	if input.Name == nil {
		return nil, ErrInvalidInput
	}
	name := strings.TrimSpace(*input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	chef := &models.Chef{Name: name}
	if input.Bio != nil {
		chef.Bio = *input.Bio
	}
	if input.Image != nil {
		chef.Image = *input.Image
	}
	if input.Specialty != nil {
		chef.Specialty = *input.Specialty
	}
	if input.Rating != nil {
		if *input.Rating < 0 || *input.Rating > 5 {
			return nil, ErrInvalidInput
		}
		chef.Rating = *input.Rating
	}
	if err := s.chefRepo.Create(chef); err != nil {
		return nil, err
	}
	return chef, nil
}

// Update applies a partial chef update.
func (s *ChefService) Update(id uint, input SaveChefInput) (*models.Chef, error) {
	chef, err := s.chefRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if chef == nil {
		return nil, ErrChefNotFound
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrInvalidInput
		}
		updates["name"] = name
	}
	if input.Bio != nil {
		updates["bio"] = *input.Bio
	}
	if input.Image != nil {
		updates["image"] = *input.Image
	}
	if input.Specialty != nil {
		updates["specialty"] = *input.Specialty
	}
	if input.Rating != nil {
		if *input.Rating < 0 || *input.Rating > 5 {
			return nil, ErrInvalidInput
		}
		updates["rating"] = *input.Rating
	}
	if err := s.chefRepo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.chefRepo.GetByID(id)
}

// Delete soft deletes a chef.
func (s *ChefService) Delete(id uint) error {
	chef, err := s.chefRepo.GetByID(id)
	if err != nil {
		return err
	}
	if chef == nil {
		return ErrChefNotFound
	}
	return s.chefRepo.Delete(id)
}

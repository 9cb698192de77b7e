package service

import (
	"strings"
	"time"

	"github.com/feastline-api/internal/models"
	"github.com/feastline-api/internal/repository"
)

// SaveAdInput create/update payload. StartAt/EndAt bound the display
// window; nil means unbounded on that side.
type SaveAdInput struct {
	Title       *string
	Description *string
	Image       *string
	TargetURL   *string
	StartAt     *time.Time
	EndAt       *time.Time
	IsActive    *bool
	SortOrder   *int
}

// AdService promotional banner operations.
type AdService struct {
	adRepo       repository.AdRepository
	mediaBaseURL string
}

// NewAdService creates an ad service.
func NewAdService(adRepo repository.AdRepository, mediaBaseURL string) *AdService {
	return &AdService{
		adRepo:       adRepo,
		mediaBaseURL: mediaBaseURL,
	}
}

// ListActive returns active ads with resolved images.
func (s *AdService) ListActive() ([]models.Ad, error) {
	ads, err := s.adRepo.ListActive()
	if err != nil {
		return nil, err
	}
	for i := range ads {
		ads[i].Image = resolveImageURL(s.mediaBaseURL, ads[i].Image)
	}
	return ads, nil
}

// Create inserts an ad.
func (s *AdService) Create(input SaveAdInput) (*models.Ad, error) {
	if input.Title == nil {
		return nil, ErrInvalidInput
	}
	title := strings.TrimSpace(*input.Title)
	if title == "" {
		return nil, ErrInvalidInput
	}

	if input.StartAt != nil && input.EndAt != nil && input.EndAt.Before(*input.StartAt) {
		return nil, ErrInvalidInput
	}

	ad := &models.Ad{Title: title, IsActive: true}
	if input.Description != nil {
		ad.Description = *input.Description
	}
	if input.Image != nil {
		ad.Image = *input.Image
	}
	if input.TargetURL != nil {
		ad.TargetURL = *input.TargetURL
	}
	ad.StartAt = input.StartAt
	ad.EndAt = input.EndAt
	if input.IsActive != nil {
		ad.IsActive = *input.IsActive
	}
	if input.SortOrder != nil {
		ad.SortOrder = *input.SortOrder
	}
	if err := s.adRepo.Create(ad); err != nil {
		return nil, err
	}
	return ad, nil
}

// Update applies a partial ad update.
func (s *AdService) Update(id uint, input SaveAdInput) (*models.Ad, error) {
	ad, err := s.adRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, ErrAdNotFound
	}

	updates := map[string]interface{}{}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrInvalidInput
		}
		updates["title"] = title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Image != nil {
		updates["image"] = *input.Image
	}
	if input.TargetURL != nil {
		updates["target_url"] = *input.TargetURL
	}
	if input.StartAt != nil && input.EndAt != nil && input.EndAt.Before(*input.StartAt) {
		return nil, ErrInvalidInput
	}
	if input.StartAt != nil {
		updates["start_at"] = *input.StartAt
	}
	if input.EndAt != nil {
		updates["end_at"] = *input.EndAt
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if input.SortOrder != nil {
		updates["sort_order"] = *input.SortOrder
	}
	if err := s.adRepo.Update(id, updates); err != nil {
		return nil, err
	}
	return s.adRepo.GetByID(id)
}

// Delete soft deletes an ad.
func (s *AdService) Delete(id uint) error {
	ad, err := s.adRepo.GetByID(id)
	if err != nil {
		return err
	}
	if ad == nil {
		return ErrAdNotFound
	}
	return s.adRepo.Delete(id)
}

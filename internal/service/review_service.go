package service

import (
	"strings"

	"github.com/feastline-api/internal/constants"
	"github.com/feastline-api/internal/models"
	"github.com/feastline-api/internal/repository"
)

// CreateReviewInput review creation request.
type CreateReviewInput struct {
	UserID    uint
	ProductID uint
	Rating    int
	Comment   string
}

// ReviewService review operations.
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
}

// NewReviewService creates a review service.
func NewReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

// Create inserts a review for an existing product.
func (s *ReviewService) Create(input CreateReviewInput) (*models.Review, error) {
	if input.UserID == 0 || input.ProductID == 0 {
		return nil, ErrInvalidInput
	}
	if input.Rating < constants.ReviewRatingMin || input.Rating > constants.ReviewRatingMax {
		return nil, ErrInvalidRating
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	review := &models.Review{
		ProductID: &input.ProductID,
		UserID:    input.UserID,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByID(review.ID)
}

// ListByProduct returns reviews for a product.
func (s *ReviewService) ListByProduct(productID uint, page, pageSize int) ([]models.Review, int64, error) {
	if productID == 0 {
		return nil, 0, ErrInvalidInput
	}
	return s.reviewRepo.List(repository.ReviewListFilter{
		ProductID: productID,
		Page:      page,
		PageSize:  pageSize,
	})
}

// Delete removes the caller's own review.
func (s *ReviewService) Delete(reviewID, userID uint) error {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	if review.UserID != userID {
		return ErrReviewForbidden
	}
	return s.reviewRepo.Delete(reviewID)
}

package service

import (
	"strings"

	"github.com/feastline-api/internal/models"
	"github.com/feastline-api/internal/repository"
)

// ProductView a product as the API returns it: image resolved to an
// absolute URL and favorite state computed per requester.
type ProductView struct {
	ID          uint             `json:"id"`
	CategoryID  *uint            `json:"category_id"`
	ChefID      *uint            `json:"chef_id,omitempty"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Text        string           `json:"text"`
	Ingredients string           `json:"ingredients"`
	Allergens   string           `json:"allergens"`
	Price       models.Money     `json:"price"`
	OldPrice    models.Money     `json:"old_price"`
	Discount    models.Money     `json:"discount"`
	Quantity    int              `json:"quantity"`
	Rating      float64          `json:"rating"`
	Image       string           `json:"image"`
	IsAvailable bool             `json:"is_available"`
	IsFavorite  bool             `json:"is_favorite"`
	Category    *models.Category `json:"category,omitempty"`
	Chef        *models.Chef     `json:"chef,omitempty"`
}

// SaveProductInput create/update payload. Nil fields are left unchanged
// on update.
type SaveProductInput struct {
	CategoryID  *uint
	ChefID      *uint
	Name        *string
	Description *string
	Text        *string
	Ingredients *string
	Allergens   *string
	Price       *models.Money
	OldPrice    *models.Money
	Discount    *models.Money
	Quantity    *int
	Image       *string
	IsAvailable *bool
	SortOrder   *int
}

func (in SaveProductInput) validate() error {
	if in.Price != nil && in.Price.Decimal.IsNegative() {
		return ErrInvalidInput
	}
	if in.OldPrice != nil && in.OldPrice.Decimal.IsNegative() {
		return ErrInvalidInput
	}
	if in.Discount != nil && in.Discount.Decimal.IsNegative() {
		return ErrInvalidInput
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return ErrInvalidInput
	}
	return nil
}

// ProductService product catalog operations.
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	favoriteRepo repository.FavoriteRepository
	mediaBaseURL string
}

// NewProductService creates a product service.
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, favoriteRepo repository.FavoriteRepository, mediaBaseURL string) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		favoriteRepo: favoriteRepo,
		mediaBaseURL: mediaBaseURL,
	}
}

// List returns product views for the requesting user. requesterID may
// be 0 for anonymous browsing, in which case no product is favorited.
func (s *ProductService) List(requesterID uint, filter repository.ProductListFilter) ([]ProductView, int64, error) {
	products, total, err := s.productRepo.List(filter)
	if err != nil {
		return nil, 0, err
	}
	favorited, err := s.favoriteRepo.ProductIDSetByUser(requesterID)
	if err != nil {
		return nil, 0, err
	}

	views := make([]ProductView, 0, len(products))
	for i := range products {
		_, isFavorite := favorited[products[i].ID]
		views = append(views, s.buildView(&products[i], isFavorite))
	}
	return views, total, nil
}

// Get returns a single product view.
func (s *ProductService) Get(requesterID, productID uint) (*ProductView, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	isFavorite := false
	if requesterID != 0 {
		favorite, err := s.favoriteRepo.GetByUserAndProduct(requesterID, productID)
		if err != nil {
			return nil, err
		}
		isFavorite = favorite != nil
	}
	view := s.buildView(product, isFavorite)
	return &view, nil
}

// Create inserts a product. A category is optional; when given it must
// exist. Prices and stock must not be negative.
func (s *ProductService) Create(input SaveProductInput) (*models.Product, error) {
	if input.Name == nil || input.Price == nil {
		return nil, ErrInvalidInput
	}
	name := strings.TrimSpace(*input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	if err := input.validate(); err != nil {
		return nil, err
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(*input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
	}

	product := &models.Product{
		CategoryID:  input.CategoryID,
		ChefID:      input.ChefID,
		Name:        name,
		Price:       *input.Price,
		IsAvailable: true,
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Text != nil {
		product.Text = *input.Text
	}
	if input.Ingredients != nil {
		product.Ingredients = *input.Ingredients
	}
	if input.Allergens != nil {
		product.Allergens = *input.Allergens
	}
	if input.OldPrice != nil {
		product.OldPrice = *input.OldPrice
	}
	if input.Discount != nil {
		product.Discount = *input.Discount
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.IsAvailable != nil {
		product.IsAvailable = *input.IsAvailable
	}
	if input.SortOrder != nil {
		product.SortOrder = *input.SortOrder
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(product.ID)
}

// Update applies a partial product update.
func (s *ProductService) Update(productID uint, input SaveProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(*input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		updates["category_id"] = *input.CategoryID
	}
	if input.ChefID != nil {
		updates["chef_id"] = *input.ChefID
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrInvalidInput
		}
		updates["name"] = name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Text != nil {
		updates["text"] = *input.Text
	}
	if input.Ingredients != nil {
		updates["ingredients"] = *input.Ingredients
	}
	if input.Allergens != nil {
		updates["allergens"] = *input.Allergens
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.OldPrice != nil {
		updates["old_price"] = *input.OldPrice
	}
	if input.Discount != nil {
		updates["discount"] = *input.Discount
	}
	if input.Quantity != nil {
		updates["quantity"] = *input.Quantity
	}
	if input.Image != nil {
		updates["image"] = *input.Image
	}
	if input.IsAvailable != nil {
		updates["is_available"] = *input.IsAvailable
	}
	if input.SortOrder != nil {
		updates["sort_order"] = *input.SortOrder
	}
	if err := s.productRepo.Update(productID, updates); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(productID)
}

// Delete soft deletes a product.
func (s *ProductService) Delete(productID uint) error {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(productID)
}

func (s *ProductService) buildView(product *models.Product, isFavorite bool) ProductView {
	view := ProductView{
		ID:          product.ID,
		CategoryID:  product.CategoryID,
		ChefID:      product.ChefID,
		Name:        product.Name,
		Description: product.Description,
		Text:        product.Text,
		Ingredients: product.Ingredients,
		Allergens:   product.Allergens,
		Price:       product.Price,
		OldPrice:    product.OldPrice,
		Discount:    product.Discount,
		Quantity:    product.Quantity,
		Rating:      product.Rating,
		Image:       resolveImageURL(s.mediaBaseURL, product.Image),
		IsAvailable: product.IsAvailable,
		IsFavorite:  isFavorite,
	}
	if product.Category != nil && product.Category.ID != 0 {
		category := *product.Category
		category.Image = resolveImageURL(s.mediaBaseURL, category.Image)
		view.Category = &category
	}
	if product.Chef != nil && product.Chef.ID != 0 {
		chef := *product.Chef
		chef.Image = resolveImageURL(s.mediaBaseURL, chef.Image)
		view.Chef = &chef
	}
	return view
}

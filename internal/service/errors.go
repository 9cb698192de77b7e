package service

import "errors"

// Sentinel errors consumed by handlers via errors.Is.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrEmptyOrder          = errors.New("order must contain at least one item")
	ErrProductNotFound     = errors.New("product not found")
	ErrProductNotAvailable = errors.New("product not available")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryExists      = errors.New("category already exists")
	ErrChefNotFound        = errors.New("chef not found")
	ErrAdNotFound          = errors.New("ad not found")
	ErrCartNotFound        = errors.New("cart not found")
	ErrCartForbidden       = errors.New("cart belongs to another user")
	ErrCartItemNotFound    = errors.New("cart item not found")
	ErrFavoriteConflict    = errors.New("favorite already exists")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidStatusChange = errors.New("invalid order status change")
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewForbidden     = errors.New("review belongs to another user")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrPaymentExists       = errors.New("order already has a payment")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrUsernameExists      = errors.New("username already taken")
	ErrEmailExists         = errors.New("email already registered")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrWeakPassword        = errors.New("password does not meet policy")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUserDisabled        = errors.New("user account disabled")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidToken        = errors.New("invalid token")
)

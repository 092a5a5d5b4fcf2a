package service

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrCartEmpty           = errors.New("cart is empty")
	ErrInvalidQuantity     = errors.New("quantity must be greater than zero")
	ErrFoodUnavailable     = errors.New("food not available")
	ErrInsufficientStock   = errors.New("not enough stock for requested quantity")
	ErrBadFulfillment      = errors.New("exactly one fulfillment option required")
	ErrCannotCancel        = errors.New("order cannot be cancelled")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrAlreadyReviewed     = errors.New("review already exists for this food and user")
	ErrDuplicateUser       = errors.New("phone number already registered")
	ErrInvalidCredentials  = errors.New("invalid phone number or password")
	ErrInvalidToken        = errors.New("token is invalid")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrInvalidOperation    = errors.New("unknown inventory operation")
)

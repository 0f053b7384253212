package service

import "errors"

// Sentinel errors the handlers translate into HTTP responses.
var (
	ErrCartNotFound        = errors.New("Cart not found.")
	ErrCartEmpty           = errors.New("You must add at least one product to the cart.")
	ErrOrderNotFound       = errors.New("Order not found")
	ErrItemNotFound        = errors.New("Product not found in cart")
	ErrProductNotFound     = errors.New("No product found.")
	ErrProductInactive     = errors.New("Product is not available.")
	ErrBrandNotFound       = errors.New("No brand found.")
	ErrReviewNotFound      = errors.New("No review found.")
	ErrWishlistInvalid     = errors.New("Invalid wishlist request.")
	ErrInvalidCartItem     = errors.New("Invalid cart item.")
	ErrInvalidProductInput = errors.New("You must enter a name, sku and price.")
	ErrInvalidPrice        = errors.New("invalid price detected")
	ErrInvalidQuantity     = errors.New("invalid quantity detected")
	ErrInvalidRating       = errors.New("Rating must be between 1 and 5.")
	ErrNotResourceOwner    = errors.New("You are not allowed to modify this resource.")
	ErrSlugTaken           = errors.New("Slug is already in use.")
	ErrEmailExists         = errors.New("That email address is already in use.")
	ErrInvalidEmail        = errors.New("Invalid email address.")
	ErrInvalidCredential   = errors.New("Password Incorrect")
	ErrPasswordTooWeak     = errors.New("Password does not meet the security policy.")

	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
)

package domain

import "errors"

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrUserNotFound         = errors.New("user not found")
)

var (
	ErrResourceUnavailable  = errors.New("product is not available for sale")
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrOrderNotCancellable  = errors.New("order cannot be cancelled")
	ErrPaymentDeclined      = errors.New("payment declined")
)

var (
	ErrAlreadyRegistered    = errors.New("user already has a registration for this event")
	ErrRegistrationNotOpen  = errors.New("registration is not open")
	ErrInvalidTransition    = errors.New("invalid registration transition")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrFeedbackAlreadyGiven = errors.New("feedback already submitted")
)

var (
	ErrAccessDenied = errors.New("access denied")
	ErrCartEmpty    = errors.New("cart is empty")
	ErrValidation   = errors.New("validation error")
)

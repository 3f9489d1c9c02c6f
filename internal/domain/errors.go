package domain

import "errors"

// Checkout input errors. Callers match them with errors.Is; the returned
// error usually wraps one of these with the offending value.
var (
	ErrInvalidToolCode        = errors.New("invalid tool code")
	ErrInvalidRentalDays      = errors.New("rental days must be 1 or greater")
	ErrInvalidDiscountPercent = errors.New("discount percent must be between 0 and 100")
	ErrInvalidDateRange       = errors.New("start date cannot be after end date")
)

// IsValidationError reports whether err is one of the checkout input errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidToolCode) ||
		errors.Is(err, ErrInvalidRentalDays) ||
		errors.Is(err, ErrInvalidDiscountPercent) ||
		errors.Is(err, ErrInvalidDateRange)
}

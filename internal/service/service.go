package service

import (
	"context"

	"tool-rental-backend/internal/domain"
)

type ToolService interface {
	ListTools(ctx context.Context) []domain.Tool
	GetTool(ctx context.Context, code string) (*domain.Tool, error)
}

type CheckoutService interface {
	Checkout(ctx context.Context, req domain.RentalRequest) (*domain.RentalAgreement, error)
}

// CheckoutRecorder observes checkout outcomes. outcome is "success" or the
// name of the validation error.
type CheckoutRecorder interface {
	ObserveCheckout(toolCode, outcome string)
}

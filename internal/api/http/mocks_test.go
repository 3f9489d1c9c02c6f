package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tool-rental-backend/internal/domain"
)

// MockCheckoutService
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Checkout(ctx context.Context, req domain.RentalRequest) (*domain.RentalAgreement, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalAgreement), args.Error(1)
}

// MockToolService
type MockToolService struct {
	mock.Mock
}

func (m *MockToolService) ListTools(ctx context.Context) []domain.Tool {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Tool)
}

func (m *MockToolService) GetTool(ctx context.Context, code string) (*domain.Tool, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}

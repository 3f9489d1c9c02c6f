package service

import (
	"github.com/stretchr/testify/mock"

	"tool-rental-backend/internal/domain"
)

// MockCheckoutRecorder
type MockCheckoutRecorder struct {
	mock.Mock
}

func (m *MockCheckoutRecorder) ObserveCheckout(toolCode, outcome string) {
	m.Called(toolCode, outcome)
}

// MockToolCatalog
type MockToolCatalog struct {
	mock.Mock
}

func (m *MockToolCatalog) Lookup(code string) (domain.Tool, bool) {
	args := m.Called(code)
	return args.Get(0).(domain.Tool), args.Bool(1)
}

func (m *MockToolCatalog) List() []domain.Tool {
	args := m.Called()
	return args.Get(0).([]domain.Tool)
}

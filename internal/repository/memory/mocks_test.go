package memory

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tool-rental-backend/internal/domain"
)

// MockToolRepository
type MockToolRepository struct {
	mock.Mock
}

func (m *MockToolRepository) ListTools(ctx context.Context) ([]domain.Tool, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tool), args.Error(1)
}

func (m *MockToolRepository) UpsertTool(ctx context.Context, tool *domain.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}

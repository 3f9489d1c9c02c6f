package service

import (
	"context"
	"fmt"

	"tool-rental-backend/internal/domain"
	"tool-rental-backend/internal/repository"
)

type toolService struct {
	catalog repository.ToolCatalog
}

func NewToolService(catalog repository.ToolCatalog) ToolService {
	return &toolService{catalog: catalog}
}

func (s *toolService) ListTools(ctx context.Context) []domain.Tool {
	return s.catalog.List()
}

func (s *toolService) GetTool(ctx context.Context, code string) (*domain.Tool, error) {
	tool, ok := s.catalog.Lookup(code)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidToolCode, code)
	}
	return &tool, nil
}

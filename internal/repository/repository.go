package repository

import (
	"context"

	"tool-rental-backend/internal/domain"
)

// ToolCatalog is the read-only tool lookup used by checkout. Implementations
// are built once and never change afterwards, so they are safe for
// concurrent readers.
type ToolCatalog interface {
	// Lookup returns the tool with the given code. Codes are case-sensitive.
	Lookup(code string) (domain.Tool, bool)
	// List returns every tool ordered by code.
	List() []domain.Tool
}

// ToolRepository is a persistent tool source the catalog is loaded from.
type ToolRepository interface {
	ListTools(ctx context.Context) ([]domain.Tool, error)
	UpsertTool(ctx context.Context, tool *domain.Tool) error
}

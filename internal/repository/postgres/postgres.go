package postgres

import (
	"database/sql"

	"tool-rental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ToolRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:             db,
		ToolRepository: NewToolRepository(db),
	}
}

// Ping checks the database connection
func (s *Store) Ping() error {
	return s.db.Ping()
}

package postgre

import (
	"database/sql"
	"fmt"

	"voltassist/internal/order/repository"
	"voltassist/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed OrderRepository.
func New(db *sql.DB, l log.Logger) repository.OrderRepository {
	if db == nil {
		panic("order/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("order/repository/postgre.%s", method)
}

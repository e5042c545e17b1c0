package postgre

import (
	"database/sql"
	"fmt"

	"voltassist/internal/chat/repository"
	"voltassist/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

var (
	_ repository.FAQRepository          = (*implRepository)(nil)
	_ repository.ConversationRepository = (*implRepository)(nil)
)

// New creates a new PostgreSQL-backed chat repository covering both the
// FAQ catalogue and conversation storage.
func New(db *sql.DB, l log.Logger) *implRepository {
	if db == nil {
		panic("chat/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("chat/repository/postgre.%s", method)
}

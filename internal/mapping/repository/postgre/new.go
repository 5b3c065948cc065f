package postgre

import (
	"database/sql"
	"fmt"

	"jira-notifier/internal/mapping/repository"
	"jira-notifier/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed mapping Store.
func New(db *sql.DB, l log.Logger) repository.Store {
	if db == nil {
		panic("mapping/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("mapping/repository/postgre.%s", method)
}

package postgre

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"library-management-system/internal/member/repository"
	"library-management-system/pkg/log"
)

type implRepository struct {
	db *sqlx.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the member domain.
func New(db *sqlx.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("member/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("member/repository/postgre.%s", method)
}

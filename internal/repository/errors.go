package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound is what repositories return when a row is absent (or invisible
// to the caller, which must look identical).
var ErrNotFound = errors.New("record not found")

// isUniqueViolation recognises a duplicate-key insert on both backends:
// pgconn surfaces SQLSTATE 23505, the sqlite driver only a message.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

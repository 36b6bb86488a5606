package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes surfaced to services
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// IsUniqueViolation reports whether err comes from a unique index
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// IsForeignKeyViolation reports whether err comes from a foreign key constraint
func IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// ViolatedConstraint returns the constraint name of a Postgres error, if any
func ViolatedConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// withoutBlobs omits the bytes of the given embedded images from list
// queries. Content types are still loaded so callers know an image exists.
func withoutBlobs(db *gorm.DB, prefixes ...string) *gorm.DB {
	cols := make([]string, len(prefixes))
	for i, p := range prefixes {
		cols[i] = p + "data"
	}
	return db.Omit(cols...)
}

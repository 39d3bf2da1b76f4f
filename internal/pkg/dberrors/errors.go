// Package dberrors classifies low-level Postgres errors so repositories
// can map constraint violations to domain errors.
package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error code for unique_violation
const uniqueViolationCode = "23505"

// IsDuplicateConstraintError reports whether err is a unique-constraint
// violation on the named constraint
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == constraintName
}

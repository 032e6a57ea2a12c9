package dao

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ReferencedError reports a delete blocked by referential integrity, naming
// what still points at the row so handlers can render a structured message
// instead of a driver error.
type ReferencedError struct {
	Entity       string
	ReferencedBy string
}

func (e *ReferencedError) Error() string {
	return fmt.Sprintf("cannot delete %v: referenced by %v", e.Entity, e.ReferencedBy)
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) &&
		pgErr.Code == pgerrcode.UniqueViolation &&
		pgErr.ConstraintName == constraint
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

// isUUID screens id parameters before they reach a uuid-typed column.
// Postgres rejects any other text with 22P02 (invalid_text_representation)
// rather than matching zero rows, so a malformed id must resolve to
// not-found, or an empty result on list filters, instead of a driver error.
func isUUID(s string) bool {
	_, err := uuid.Parse(s)

	return err == nil
}

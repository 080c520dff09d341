package db

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Store error taxonomy. Route handlers map these onto HTTP statuses;
// anything else is a transport/connectivity failure.
var (
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("uniqueness conflict")
	ErrInvalidReference = errors.New("invalid reference")
)

// PostgreSQL error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateError maps driver-level failures onto the store taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation:
			return ErrConflict
		case pgForeignKeyViolation:
			return ErrInvalidReference
		}
	}
	return err
}

package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"schoolhub/domain"
)

// translateError maps driver failures onto the domain taxonomy. Duplicate
// writers can race past a pre-check, so the 23505 unique violation is
// translated here as well.
func translateError(op, entity string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return &domain.DuplicateError{Entity: entity, Detail: pgErr.ConstraintName}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &domain.DuplicateError{Entity: entity}
	}

	return &domain.StorageError{Op: op, Err: err}
}

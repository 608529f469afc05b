package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Vending-api/internal/domain"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgInvalidTextRepr     = "22P02"
	pgNumericOutOfRange   = "22003"
)

// classify traduce los rechazos de integridad de PostgreSQL a errores de dominio.
// El resto se envuelve con op y sigue como error interno.
func classify(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation, pgUniqueViolation, pgCheckViolation:
			reason := pgErr.Message
			if pgErr.Detail != "" {
				reason = reason + ": " + pgErr.Detail
			}
			return fmt.Errorf("%s: %w", op, domain.NewConstraintError(reason))
		case pgInvalidTextRepr, pgNumericOutOfRange:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrInvalidInput, pgErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

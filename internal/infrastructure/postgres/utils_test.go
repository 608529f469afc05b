package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Vending-api/internal/domain"
)

func TestClassify_ForeignKey(t *testing.T) {
	err := classify("product.Delete", &pgconn.PgError{
		Code:    "23503",
		Message: `update or delete on table "products" violates foreign key constraint "inventory_product_id_fkey" on table "inventory"`,
		Detail:  `Key (id)=(p1) is still referenced from table "inventory".`,
	})

	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
	var ce *domain.ConstraintError
	assert.True(t, errors.As(err, &ce))
	assert.Contains(t, ce.Reason, "violates foreign key constraint")
	assert.Contains(t, ce.Reason, "still referenced")
}

func TestClassify_CheckYUnique(t *testing.T) {
	assert.ErrorIs(t, classify("op", &pgconn.PgError{Code: "23514"}), domain.ErrConstraintViolation)
	assert.ErrorIs(t, classify("op", &pgconn.PgError{Code: "23505"}), domain.ErrConstraintViolation)
}

func TestClassify_UUIDMalformado(t *testing.T) {
	assert.ErrorIs(t, classify("op", &pgconn.PgError{Code: "22P02"}), domain.ErrInvalidInput)
}

func TestClassify_DesbordeNumericoEsEntradaInvalida(t *testing.T) {
	err := classify("inventory.Restock", &pgconn.PgError{Code: "22003", Message: "bigint out of range"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotErrorIs(t, err, domain.ErrConstraintViolation)
}

func TestClassify_OtrosErroresSonInternos(t *testing.T) {
	err := classify("inventory.List", errors.New("conn reset"))
	assert.NotErrorIs(t, err, domain.ErrConstraintViolation)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput)
	assert.EqualError(t, err, "inventory.List: conn reset")
}

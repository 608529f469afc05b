package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Vending-api/internal/domain"
)

func TestConstraintError_EsErrConstraintViolation(t *testing.T) {
	err := fmt.Errorf("product.Delete: %w", domain.NewConstraintError(`update or delete on table "products" violates foreign key constraint`))

	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	var ce *domain.ConstraintError
	assert.True(t, errors.As(err, &ce))
	assert.Contains(t, ce.Reason, "foreign key")
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

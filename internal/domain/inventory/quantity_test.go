package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Vending-api/internal/domain"
)

func TestValidateRestockDelta(t *testing.T) {
	assert.NoError(t, ValidateRestockDelta(1))
	assert.ErrorIs(t, ValidateRestockDelta(0), domain.ErrInvalidInput)
	assert.ErrorIs(t, ValidateRestockDelta(-3), domain.ErrInvalidInput)
}

func TestValidateQuantity(t *testing.T) {
	assert.NoError(t, ValidateQuantity(0))
	assert.ErrorIs(t, ValidateQuantity(-1), domain.ErrInvalidInput)
}

func TestClampDecrement(t *testing.T) {
	tests := []struct {
		current, amount, want int64
	}{
		{10, 3, 7},
		{10, 10, 0},
		{10, 15, 0},
		{0, 1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampDecrement(tt.current, tt.amount), "current=%d amount=%d", tt.current, tt.amount)
	}
}

func TestSuggestedRestock(t *testing.T) {
	assert.Equal(t, int64(8), SuggestedRestock(2, 5))
	assert.Equal(t, int64(0), SuggestedRestock(12, 5))
	assert.Equal(t, int64(1), SuggestedRestock(0, 0), "el objetivo mínimo es 1")
}

func TestRemoveMode_String(t *testing.T) {
	assert.Equal(t, "delete", RemoveDelete.String())
	assert.Equal(t, "decrement", RemoveDecrement.String())
}

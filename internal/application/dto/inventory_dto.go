package dto

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Vending-api/internal/domain"
	"github.com/jhoicas/Vending-api/internal/domain/entity"
)

var maxQty = decimal.NewFromInt(math.MaxInt64)

// ParseQty convierte el qty del body (número o string numérico) a entero.
// nil = ausente; decimales con parte fraccionaria se rechazan.
func ParseQty(qty *decimal.Decimal) (int64, error) {
	if qty == nil {
		return 0, fmt.Errorf("%w: qty es obligatorio", domain.ErrInvalidInput)
	}
	if !qty.IsInteger() {
		return 0, fmt.Errorf("%w: qty debe ser un entero", domain.ErrInvalidInput)
	}
	if qty.Abs().GreaterThan(maxQty) {
		return 0, fmt.Errorf("%w: qty fuera de rango", domain.ErrInvalidInput)
	}
	return qty.IntPart(), nil
}

// SetQuantityRequest body de PUT /api/inventory/:inv_id.
type SetQuantityRequest struct {
	Qty *decimal.Decimal `json:"qty" swaggertype:"integer"`
}

// DecrementRequest body de POST /api/inventory/:inv_id/decrement.
type DecrementRequest struct {
	Qty *decimal.Decimal `json:"qty" swaggertype:"integer"`
}

// RestockRequest body de POST /api/inventory/restock.
type RestockRequest struct {
	MachineID string           `json:"machine_id"`
	ProductID string           `json:"product_id"`
	Qty       *decimal.Decimal `json:"qty" swaggertype:"integer"`
}

// InventoryLineResponse fila del ledger unida con el producto.
type InventoryLineResponse struct {
	InvID       string          `json:"inv_id"`
	MachineID   string          `json:"machine_id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price" swaggertype:"number"`
	Qty         int64           `json:"qty"`
	LastRestock time.Time       `json:"last_restock"`
}

// NewInventoryLineResponse mapea la línea del ledger a la respuesta.
func NewInventoryLineResponse(l *entity.InventoryLine) InventoryLineResponse {
	return InventoryLineResponse{
		InvID:       l.ID,
		MachineID:   l.MachineID,
		ProductID:   l.ProductID,
		ProductName: l.ProductName,
		Price:       l.Price,
		Qty:         l.Quantity,
		LastRestock: l.LastRestock,
	}
}

// LowStockItemDTO fila por debajo del umbral con la reposición sugerida.
type LowStockItemDTO struct {
	InvID            string          `json:"inv_id"`
	MachineID        string          `json:"machine_id"`
	MachineName      string          `json:"machine_name"`
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	Price            decimal.Decimal `json:"price" swaggertype:"number"`
	Qty              int64           `json:"qty"`
	SuggestedRestock int64           `json:"suggested_restock"` // threshold×2 - qty, mínimo 0
}

// LowStockResponse respuesta de GET /api/inventory/low-stock.
type LowStockResponse struct {
	Threshold int64             `json:"threshold"`
	Total     int               `json:"total"`
	Items     []LowStockItemDTO `json:"items"`
}

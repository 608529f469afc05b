package dto

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Vending-api/internal/domain"
	"github.com/jhoicas/Vending-api/internal/domain/entity"
)

// Límites de products.price NUMERIC(12, 2).
const priceDecimals = 2

var maxPrice = decimal.New(1, 10)

// ProductRequest body de POST /api/products y PUT /api/products/:id.
// Price es puntero para distinguir "ausente" de 0 (que es válido).
type ProductRequest struct {
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price" swaggertype:"number"`
	Unit  string           `json:"unit,omitempty"`
}

// Normalize valida y aplica defaults: name sin espacios, unit = pcs si falta.
func (r *ProductRequest) Normalize() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Unit = strings.TrimSpace(r.Unit)
	if r.Name == "" {
		return fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	if r.Price == nil {
		return fmt.Errorf("%w: price es obligatorio", domain.ErrInvalidInput)
	}
	if r.Price.IsNegative() {
		return fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	if !r.Price.Equal(r.Price.Round(priceDecimals)) {
		return fmt.Errorf("%w: price admite como máximo %d decimales", domain.ErrInvalidInput, priceDecimals)
	}
	if r.Price.GreaterThanOrEqual(maxPrice) {
		return fmt.Errorf("%w: price debe ser menor que %s", domain.ErrInvalidInput, maxPrice)
	}
	if r.Unit == "" {
		r.Unit = entity.DefaultUnit
	}
	return nil
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price" swaggertype:"number"`
	Unit  string          `json:"unit"`
}

// CreateProductResponse respuesta 201 de POST /api/products.
type CreateProductResponse struct {
	Message   string `json:"message"`
	ProductID string `json:"product_id"`
}

// NewProductResponse mapea la entidad a la respuesta.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price, Unit: p.Unit}
}

// Package inventory contiene los casos de uso del ledger de inventario por máquina.
package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/Vending-api/internal/application/dto"
	"github.com/jhoicas/Vending-api/internal/domain"
	rules "github.com/jhoicas/Vending-api/internal/domain/inventory"
	"github.com/jhoicas/Vending-api/internal/domain/repository"
)

var tracer = otel.Tracer("github.com/jhoicas/Vending-api/internal/application/inventory")

// LedgerUseCase restock, ajuste absoluto, baja y listado del ledger.
// La aritmética del restock vive en el repositorio (una sentencia atómica), nunca aquí.
type LedgerUseCase struct {
	repo repository.InventoryRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(repo repository.InventoryRepository) *LedgerUseCase {
	return &LedgerUseCase{repo: repo}
}

// Restock suma delta (> 0) al par (máquina, producto), creando la fila si no existe.
func (uc *LedgerUseCase) Restock(ctx context.Context, machineID, productID string, delta int64) (err error) {
	ctx, span := tracer.Start(ctx, "ledger.Restock", trace.WithAttributes(
		attribute.String("machine.id", machineID),
		attribute.String("product.id", productID),
		attribute.Int64("delta", delta),
	))
	defer func() { endSpan(span, err) }()

	machineID, productID = strings.TrimSpace(machineID), strings.TrimSpace(productID)
	if err := requireUUID("machine_id", machineID); err != nil {
		return err
	}
	if err := requireUUID("product_id", productID); err != nil {
		return err
	}
	if err := rules.ValidateRestockDelta(delta); err != nil {
		return err
	}
	return uc.repo.Restock(ctx, uuid.New().String(), machineID, productID, delta)
}

// SetQuantity sobrescribe la cantidad (>= 0) y devuelve la fila refrescada.
func (uc *LedgerUseCase) SetQuantity(ctx context.Context, invID string, qty int64) (_ *dto.InventoryLineResponse, err error) {
	ctx, span := tracer.Start(ctx, "ledger.SetQuantity", trace.WithAttributes(
		attribute.String("inventory.id", invID),
		attribute.Int64("qty", qty),
	))
	defer func() { endSpan(span, err) }()

	if err := rules.ValidateQuantity(qty); err != nil {
		return nil, err
	}
	if err := knownInventoryID("inventory.SetQuantity", invID); err != nil {
		return nil, err
	}
	line, err := uc.repo.SetQuantity(ctx, invID, qty)
	if err != nil {
		return nil, err
	}
	out := dto.NewInventoryLineResponse(line)
	return &out, nil
}

// Remove aplica la política indicada. Con RemoveDelete no devuelve fila;
// con RemoveDecrement devuelve la fila con max(0, qty - amount).
func (uc *LedgerUseCase) Remove(ctx context.Context, invID string, mode rules.RemoveMode, amount int64) (_ *dto.InventoryLineResponse, err error) {
	ctx, span := tracer.Start(ctx, "ledger.Remove", trace.WithAttributes(
		attribute.String("inventory.id", invID),
		attribute.String("mode", mode.String()),
	))
	defer func() { endSpan(span, err) }()

	if err := knownInventoryID("inventory.Remove", invID); err != nil {
		return nil, err
	}

	switch mode {
	case rules.RemoveDelete:
		return nil, uc.repo.Delete(ctx, invID)
	case rules.RemoveDecrement:
		if amount <= 0 {
			return nil, fmt.Errorf("%w: qty debe ser mayor que cero", domain.ErrInvalidInput)
		}
		line, err := uc.repo.Decrement(ctx, invID, amount)
		if err != nil {
			return nil, err
		}
		out := dto.NewInventoryLineResponse(line)
		return &out, nil
	default:
		return nil, fmt.Errorf("%w: modo de baja desconocido %s", domain.ErrInvalidInput, mode)
	}
}

// List devuelve el inventario de la máquina ordenado por producto. Máquina desconocida = lista vacía.
func (uc *LedgerUseCase) List(ctx context.Context, machineID string) ([]dto.InventoryLineResponse, error) {
	out := make([]dto.InventoryLineResponse, 0)
	if _, err := uuid.Parse(machineID); err != nil {
		return out, nil
	}
	lines, err := uc.repo.ListByMachine(ctx, machineID)
	if err != nil {
		return nil, err
	}
	for i := range lines {
		out = append(out, dto.NewInventoryLineResponse(&lines[i]))
	}
	return out, nil
}

func requireUUID(field, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %s es obligatorio", domain.ErrInvalidInput, field)
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s no es un UUID válido", domain.ErrInvalidInput, field)
	}
	return nil
}

func knownInventoryID(op, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: inv_id es obligatorio", domain.ErrInvalidInput)
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Vending-api/internal/application/dto"
	"github.com/jhoicas/Vending-api/internal/application/inventory"
	"github.com/jhoicas/Vending-api/internal/domain"
	rules "github.com/jhoicas/Vending-api/internal/domain/inventory"
)

// InventoryHandler endpoints del ledger de inventario por máquina.
type InventoryHandler struct {
	ledger   *inventory.LedgerUseCase
	lowStock *inventory.LowStockUseCase
	sheet    *inventory.StockSheetUseCase
	metrics  *Metrics
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	ledger *inventory.LedgerUseCase,
	lowStock *inventory.LowStockUseCase,
	sheet *inventory.StockSheetUseCase,
	metrics *Metrics,
) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, lowStock: lowStock, sheet: sheet, metrics: metrics}
}

// ListByMachine godoc
// @Summary      Inventario de una máquina
// @Description  Filas ordenadas por nombre de producto. Máquina desconocida devuelve lista vacía.
// @Tags         inventory
// @Produce      json
// @Param        machine_id  path  string  true  "ID de la máquina"
// @Success      200  {array}  dto.InventoryLineResponse
// @Router       /api/machines/{machine_id}/inventory [get]
func (h *InventoryHandler) ListByMachine(c *fiber.Ctx) error {
	out, err := h.ledger.List(c.UserContext(), c.Params("machine_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetQuantity godoc
// @Summary      Fijar cantidad
// @Description  Sobrescribe la cantidad (entero >= 0). No modifica last_restock.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        inv_id  path  string  true  "ID de la fila de inventario"
// @Param        body    body  dto.SetQuantityRequest  true  "Nueva cantidad"
// @Success      200  {object}  dto.InventoryLineResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{inv_id} [put]
func (h *InventoryHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	qty, err := dto.ParseQty(in.Qty)
	if err == nil {
		var out *dto.InventoryLineResponse
		out, err = h.ledger.SetQuantity(c.UserContext(), c.Params("inv_id"), qty)
		if err == nil {
			h.metrics.ObserveLedger("set_quantity", nil)
			return c.JSON(out)
		}
	}
	h.metrics.ObserveLedger("set_quantity", err)
	return writeError(c, err)
}

// Restock godoc
// @Summary      Reponer producto en máquina
// @Description  Suma qty (> 0) a la fila (máquina, producto); la crea si no existe.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RestockRequest  true  "Reposición"
// @Success      201  {object}  dto.OKResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/restock [post]
func (h *InventoryHandler) Restock(c *fiber.Ctx) error {
	var in dto.RestockRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	err := restockInput(&in)
	if err == nil {
		var qty int64
		if qty, err = dto.ParseQty(in.Qty); err == nil {
			err = h.ledger.Restock(c.UserContext(), in.MachineID, in.ProductID, qty)
		}
	}
	h.metrics.ObserveLedger("restock", err)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKResponse{OK: true})
}

func restockInput(in *dto.RestockRequest) error {
	var missing []string
	if strings.TrimSpace(in.MachineID) == "" {
		missing = append(missing, "machine_id")
	}
	if strings.TrimSpace(in.ProductID) == "" {
		missing = append(missing, "product_id")
	}
	if in.Qty == nil {
		missing = append(missing, "qty")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: faltan campos obligatorios: %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

// Decrement godoc
// @Summary      Descontar unidades
// @Description  qty = max(0, qty - n). La fila se conserva aunque llegue a 0.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        inv_id  path  string  true  "ID de la fila de inventario"
// @Param        body    body  dto.DecrementRequest  true  "Unidades a descontar"
// @Success      200  {object}  dto.InventoryLineResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{inv_id}/decrement [post]
func (h *InventoryHandler) Decrement(c *fiber.Ctx) error {
	var in dto.DecrementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	amount, err := dto.ParseQty(in.Qty)
	if err == nil {
		var out *dto.InventoryLineResponse
		out, err = h.ledger.Remove(c.UserContext(), c.Params("inv_id"), rules.RemoveDecrement, amount)
		if err == nil {
			h.metrics.ObserveLedger("decrement", nil)
			return c.JSON(out)
		}
	}
	h.metrics.ObserveLedger("decrement", err)
	return writeError(c, err)
}

// Delete godoc
// @Summary      Eliminar fila de inventario
// @Tags         inventory
// @Produce      json
// @Param        inv_id  path  string  true  "ID de la fila de inventario"
// @Success      200  {object}  dto.OKResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{inv_id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	_, err := h.ledger.Remove(c.UserContext(), c.Params("inv_id"), rules.RemoveDelete, 0)
	h.metrics.ObserveLedger("delete", err)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OKResponse{OK: true})
}

// LowStock godoc
// @Summary      Lista de reposición
// @Description  Filas con qty <= threshold, de menor a mayor, con la reposición sugerida.
// @Tags         inventory
// @Produce      json
// @Param        threshold   query  int     false  "Umbral"  default(5)
// @Param        machine_id  query  string  false  "Filtrar por máquina"
// @Success      200  {object}  dto.LowStockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	threshold := int64(inventory.DefaultLowStockThreshold)
	if raw := strings.TrimSpace(c.Query("threshold")); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return writeError(c, fmt.Errorf("%w: threshold debe ser un entero", domain.ErrInvalidInput))
		}
		threshold = n
	}
	out, err := h.lowStock.List(c.UserContext(), threshold, strings.TrimSpace(c.Query("machine_id")))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// StockSheetPDF godoc
// @Summary      Hoja de carga en PDF
// @Tags         inventory
// @Produce      application/pdf
// @Param        machine_id  path  string  true  "ID de la máquina"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/machines/{machine_id}/inventory/pdf [get]
func (h *InventoryHandler) StockSheetPDF(c *fiber.Ctx) error {
	pdf, filename, err := h.sheet.Generate(c.UserContext(), c.Params("machine_id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(filename)
	return c.Send(pdf)
}

package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Vending-api/internal/application/analytics"
	"github.com/jhoicas/Vending-api/internal/domain"
)

// MetricsHandler endpoints del tablero. Todo se calcula en cada petición.
type MetricsHandler struct {
	uc *appanalytics.MetricsUseCase
}

// NewMetricsHandler construye el handler.
func NewMetricsHandler(uc *appanalytics.MetricsUseCase) *MetricsHandler {
	return &MetricsHandler{uc: uc}
}

// GetMetrics godoc
// @Summary      Métricas del tablero
// @Tags         metrics
// @Produce      json
// @Success      200  {object}  dto.MetricsResponse
// @Router       /api/metrics [get]
func (h *MetricsHandler) GetMetrics(c *fiber.Ctx) error {
	out, err := h.uc.GetMetrics(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetSummary godoc
// @Summary      Resumen (formato de compatibilidad)
// @Tags         metrics
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Router       /api/metrics/summary [get]
func (h *MetricsHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Productos más vendidos
// @Tags         metrics
// @Produce      json
// @Param        limit  query  int  false  "Cantidad (1-50)"  default(5)
// @Success      200  {array}   dto.TopProductDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/metrics/top-products [get]
func (h *MetricsHandler) TopProducts(c *fiber.Ctx) error {
	limit := appanalytics.DefaultTopProducts
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return writeError(c, fmt.Errorf("%w: limit debe ser un entero", domain.ErrInvalidInput))
		}
		limit = n
	}
	out, err := h.uc.TopProducts(c.UserContext(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RevenueTrend godoc
// @Summary      Ingresos de los últimos 7 días
// @Description  Un punto por día con ventas (YYYY-MM-DD, UTC), ascendente.
// @Tags         metrics
// @Produce      json
// @Success      200  {array}  dto.RevenuePointDTO
// @Router       /api/metrics/revenue-trend [get]
func (h *MetricsHandler) RevenueTrend(c *fiber.Ctx) error {
	out, err := h.uc.RevenueTrend(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// MachineDistribution godoc
// @Summary      Stock por máquina
// @Tags         metrics
// @Produce      json
// @Success      200  {array}  dto.MachineDistributionDTO
// @Router       /api/metrics/machine-distribution [get]
func (h *MetricsHandler) MachineDistribution(c *fiber.Ctx) error {
	out, err := h.uc.MachineDistribution(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

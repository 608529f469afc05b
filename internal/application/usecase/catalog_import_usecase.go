package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Vending-api/internal/application/dto"
	"github.com/jhoicas/Vending-api/internal/domain"
	"github.com/jhoicas/Vending-api/internal/domain/entity"
	"github.com/jhoicas/Vending-api/internal/domain/repository"
)

// CatalogImportUseCase carga máquinas y productos desde CSV dentro de una transacción.
// Si una fila falla no queda nada insertado.
type CatalogImportUseCase struct {
	tx CatalogTxRunner
}

// NewCatalogImportUseCase construye el caso de uso.
func NewCatalogImportUseCase(tx CatalogTxRunner) *CatalogImportUseCase {
	return &CatalogImportUseCase{tx: tx}
}

// ImportMachines columnas: id (opcional, UUID), location, description.
func (uc *CatalogImportUseCase) ImportMachines(ctx context.Context, r io.Reader) (int, error) {
	rows, err := readCSV(r, []string{"location", "description"})
	if err != nil {
		return 0, err
	}

	machines := make([]entity.Machine, 0, len(rows))
	for i, row := range rows {
		id := row["id"]
		if id == "" {
			id = uuid.NewString()
		} else if _, err := uuid.Parse(id); err != nil {
			return 0, fmt.Errorf("%w: fila %d: id %q no es UUID", domain.ErrInvalidInput, i+2, id)
		}
		machines = append(machines, entity.Machine{ID: id, Location: row["location"], Description: row["description"]})
	}

	err = uc.tx.RunCatalog(ctx, func(_ repository.ProductRepository, machineRepo repository.MachineRepository) error {
		for i := range machines {
			if err := machineRepo.Create(ctx, &machines[i]); err != nil {
				return fmt.Errorf("fila %d: %w", i+2, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(machines), nil
}

// ImportProducts columnas: name, price, unit (opcional).
func (uc *CatalogImportUseCase) ImportProducts(ctx context.Context, r io.Reader) (int, error) {
	rows, err := readCSV(r, []string{"name", "price"})
	if err != nil {
		return 0, err
	}

	now := time.Now()
	products := make([]entity.Product, 0, len(rows))
	for i, row := range rows {
		req := dto.ProductRequest{Name: row["name"], Unit: row["unit"]}
		if raw := strings.TrimSpace(row["price"]); raw != "" {
			price, err := decimal.NewFromString(raw)
			if err != nil {
				return 0, fmt.Errorf("%w: fila %d: price %q no es numérico", domain.ErrInvalidInput, i+2, raw)
			}
			req.Price = &price
		}
		if err := req.Normalize(); err != nil {
			return 0, fmt.Errorf("fila %d: %w", i+2, err)
		}
		products = append(products, entity.Product{
			ID: uuid.NewString(), Name: req.Name, Price: *req.Price, Unit: req.Unit, CreatedAt: now,
		})
	}

	err = uc.tx.RunCatalog(ctx, func(productRepo repository.ProductRepository, _ repository.MachineRepository) error {
		for i := range products {
			if err := productRepo.Create(ctx, &products[i]); err != nil {
				return fmt.Errorf("fila %d: %w", i+2, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(products), nil
}

// readCSV lee un CSV con encabezado y devuelve cada fila como mapa columna → valor.
func readCSV(r io.Reader, required []string) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: archivo vacío", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: encabezado: %v", domain.ErrInvalidInput, err)
	}
	cols := make([]string, len(header))
	present := make(map[string]bool, len(header))
	for i, h := range header {
		cols[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		present[cols[i]] = true
	}
	for _, c := range required {
		if !present[c] {
			return nil, fmt.Errorf("%w: falta la columna %q", domain.ErrInvalidInput, c)
		}
	}

	var rows []map[string]string
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: fila %d: %v", domain.ErrInvalidInput, line, err)
		}
		row := make(map[string]string, len(cols))
		for i, v := range rec {
			if i < len(cols) {
				row[cols[i]] = strings.TrimSpace(v)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

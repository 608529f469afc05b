// Package pdf genera la hoja de carga de una máquina expendedora.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la máquina + ID  │  Fecha de generación   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Cant. | Precio | Valor                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Unidades / Valor en stock                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appinventory "github.com/jhoicas/Vending-api/internal/application/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appinventory.StockSheetGenerator = (*MarotoStockSheetGenerator)(nil)

// MarotoStockSheetGenerator implementa inventory.StockSheetGenerator usando Maroto v2.
type MarotoStockSheetGenerator struct{}

// NewMarotoStockSheetGenerator construye el generador.
func NewMarotoStockSheetGenerator() *MarotoStockSheetGenerator { return &MarotoStockSheetGenerator{} }

// GenerateStockSheetPDF genera el PDF y devuelve sus bytes.
func (g *MarotoStockSheetGenerator) GenerateStockSheetPDF(_ context.Context, sheet appinventory.StockSheet) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de carga", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRows(sheet)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sheet))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(sheet appinventory.StockSheet) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(sheet.MachineName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("ID: "+sheet.MachineID, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("HOJA DE CARGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+sheet.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 6, align.Left),
		h("Cant.", 2, align.Center),
		h("Precio", 2, align.Right),
		h("Valor", 2, align.Right),
	)
}

func tableDetailRows(sheet appinventory.StockSheet) []core.Row {
	if len(sheet.Lines) == 0 {
		return []core.Row{row.New(8).Add(col.New(12).Add(
			text.New("Sin productos cargados", props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		))}
	}
	result := make([]core.Row, 0, len(sheet.Lines))
	for _, l := range sheet.Lines {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(l.ProductName, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(strconv.FormatInt(l.Quantity, 10), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New("$"+l.Price.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New("$"+l.Value().StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalsRow(sheet appinventory.StockSheet) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 1, Top: top, Color: colorPrimary})
	}
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			label("Unidades:"),
			text.New("Valor en stock:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 6}),
		),
		col.New(3).Add(
			value(strconv.FormatInt(sheet.TotalQty, 10), 0),
			value("$"+sheet.TotalValue.StringFixed(2), 6),
		),
	)
}

// Package pdf renderiza el comprobante de una factura del panel.
//
// Layout de la página A5:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: nombre del panel │ N° de factura     │
//	│  ───────────────────────────────────────────  │
//	│  CLIENTE: nombre + email                      │
//	│  Fecha de emisión / Estado                    │
//	│  ───────────────────────────────────────────  │
//	│  TOTAL                                        │
//	│  QR con el id de la factura                   │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/panel-admin-api/internal/application/usecase"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa usecase.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	appName string
}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator(appName string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{appName: appName}
}

// Generate genera el comprobante y devuelve sus bytes.
func (g *MarotoReceiptGenerator) Generate(_ context.Context, data usecase.ReceiptData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+data.InvoiceID, true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRows(data)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(data))
	m.AddRows(line.NewRow(3))
	m.AddRows(qrRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del panel (izq) y número de factura (der).
func headerRow(appName string, data usecase.ReceiptData) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Invoice receipt", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Invoice #"+shortID(data.InvoiceID), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New(data.Date, props.Text{Size: 9, Align: align.Right, Top: 9, Color: colorGray}),
		),
	)
}

func customerRows(data usecase.ReceiptData) []core.Row {
	return []core.Row{
		row.New(8).Add(
			col.New(3).Add(text.New("Billed to", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
			col.New(9).Add(
				text.New(data.CustomerName, props.Text{Size: 9, Top: 1}),
				text.New(data.CustomerEmail, props.Text{Size: 8, Top: 5, Color: colorGray}),
			),
		),
		row.New(6).Add(
			col.New(3).Add(text.New("Status", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
			col.New(9).Add(text.New(strings.ToUpper(data.Status), props.Text{Size: 9, Top: 1})),
		),
	}
}

func totalRow(data usecase.ReceiptData) core.Row {
	return row.New(10).Add(
		col.New(7).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 11, Top: 2})),
		col.New(5).Add(text.New("$"+data.Amount, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
	)
}

// qrRow: QR con el id completo de la factura para búsqueda en el panel.
func qrRow(data usecase.ReceiptData) core.Row {
	return row.New(26).Add(
		col.New(4).Add(code.NewQr(data.InvoiceID, props.Rect{Percent: 90})),
		col.New(8).Add(text.New(data.InvoiceID, props.Text{Size: 7, Top: 10, Color: colorGray})),
	)
}

// shortID primeros 8 caracteres del uuid para el encabezado.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

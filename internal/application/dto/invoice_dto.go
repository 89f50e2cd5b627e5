package dto

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// InvoiceRequest campos del formulario de factura, para crear y para editar
// (la edición es reemplazo completo de los campos mutables). Amount llega como
// string del formulario y se coacciona a decimal antes de la restricción > 0.
type InvoiceRequest struct {
	CustomerID string `json:"customer_id" form:"customer_id" validate:"required"`
	Amount     string `json:"amount" form:"amount" validate:"required"`
	Status     string `json:"status" form:"status" validate:"required,oneof=pending paid"`
}

// AmountCents convierte Amount a unidades menores (centavos).
// Falla con un monto no numérico, <= 0 o con más de dos decimales.
func (r InvoiceRequest) AmountCents() (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil {
		return 0, fmt.Errorf("monto no numérico: %w", err)
	}
	if !d.IsPositive() {
		return 0, fmt.Errorf("monto no positivo: %s", d)
	}
	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("monto con más de dos decimales: %s", d)
	}
	return cents.IntPart(), nil
}

// InvoiceResponse salida de una factura. Amount vuelve en unidades mayores
// con dos decimales ("12.34"); Date en formato de calendario (YYYY-MM-DD).
type InvoiceResponse struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Amount     string `json:"amount"`
	Status     string `json:"status"`
	Date       string `json:"date"`
}

// InvoiceListItem fila del listado de facturas con el cliente resuelto.
type InvoiceListItem struct {
	InvoiceResponse
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

// FormatCents presenta centavos como unidades mayores con dos decimales.
func FormatCents(cents int64) string {
	return decimal.NewFromInt(cents).Shift(-2).StringFixed(2)
}

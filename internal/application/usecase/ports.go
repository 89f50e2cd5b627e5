package usecase

import "context"

// Rutas del panel cuyas vistas cacheadas se invalidan tras cada mutación.
const (
	RouteUsers    = "/dashboard/users"
	RouteInvoices = "/dashboard/invoices"
)

// Invalidator marca como obsoleta la vista cacheada de una ruta. Se inyecta en
// cada use case (no es un global ambiente) para que sigan siendo testeables
// de forma independiente.
type Invalidator interface {
	Invalidate(routeKey string)
}

// ReceiptGenerator renderiza el comprobante PDF de una factura.
type ReceiptGenerator interface {
	Generate(ctx context.Context, data ReceiptData) ([]byte, error)
}

// ReceiptData datos ya resueltos para el comprobante.
type ReceiptData struct {
	InvoiceID     string
	CustomerName  string
	CustomerEmail string
	Amount        string // unidades mayores con dos decimales
	Status        string
	Date          string // YYYY-MM-DD
}

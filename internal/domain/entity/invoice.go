package entity

import "time"

// Estados válidos para Invoice.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// Invoice representa una factura del panel.
// AmountCents guarda el monto en unidades menores (centavos) para evitar
// el error de redondeo de punto flotante binario.
type Invoice struct {
	ID          string
	CustomerID  string
	AmountCents int64
	Status      string // pending, paid
	Date        time.Time // asignada por el servidor al crear
}

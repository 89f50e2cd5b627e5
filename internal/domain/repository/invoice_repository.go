package repository

import (
	"context"

	"github.com/jhoicas/panel-admin-api/internal/domain/entity"
)

// InvoiceWithCustomer fila del listado de facturas con los datos del cliente.
type InvoiceWithCustomer struct {
	Invoice       entity.Invoice
	CustomerName  string
	CustomerEmail string
}

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// GetWithCustomer obtiene la factura unida con el cliente (para el comprobante).
	GetWithCustomer(ctx context.Context, id string) (*InvoiceWithCustomer, error)
	// Update reemplaza customer_id, amount y status de la fila con ese id.
	// Si el id no existe es un no-op silencioso a nivel de store.
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id string) error
	// ListWithCustomer lista facturas unidas con el cliente; search filtra por
	// nombre o email del cliente (vacío = sin filtro).
	ListWithCustomer(ctx context.Context, search string, limit, offset int) ([]*InvoiceWithCustomer, error)
}

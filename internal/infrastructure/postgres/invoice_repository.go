package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/panel-admin-api/internal/domain/entity"
	"github.com/jhoicas/panel-admin-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
// La tabla es invoices(id, customer_id, amount, status, date) con amount en
// unidades menores (BIGINT).
type InvoiceRepo struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

// Create persiste una nueva factura.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.AmountCents, invoice.Status, invoice.Date,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID; (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `SELECT id, customer_id, amount, status, date FROM invoices WHERE id = $1`
	var i entity.Invoice
	err := r.pool.QueryRow(ctx, query, id).Scan(&i.ID, &i.CustomerID, &i.AmountCents, &i.Status, &i.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice by id: %w", err)
	}
	return &i, nil
}

// GetWithCustomer obtiene la factura unida con su cliente; (nil, nil) si no existe.
func (r *InvoiceRepo) GetWithCustomer(ctx context.Context, id string) (*repository.InvoiceWithCustomer, error) {
	query := `
		SELECT i.id, i.customer_id, i.amount, i.status, i.date, c.name, c.email
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE i.id = $1`
	var row repository.InvoiceWithCustomer
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&row.Invoice.ID, &row.Invoice.CustomerID, &row.Invoice.AmountCents,
		&row.Invoice.Status, &row.Invoice.Date, &row.CustomerName, &row.CustomerEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice with customer: %w", err)
	}
	return &row, nil
}

// Update reemplaza customer_id, amount y status de la fila con ese id.
// Un id inexistente afecta cero filas y no es error.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	query := `UPDATE invoices SET customer_id = $2, amount = $3, status = $4 WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		invoice.ID, invoice.CustomerID, invoice.AmountCents, invoice.Status,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete elimina por ID; borrar un id inexistente no es error.
func (r *InvoiceRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// ListWithCustomer lista facturas unidas con el cliente, más recientes primero.
// search filtra por nombre o email del cliente (ILIKE; vacío = sin filtro).
func (r *InvoiceRepo) ListWithCustomer(ctx context.Context, search string, limit, offset int) ([]*repository.InvoiceWithCustomer, error) {
	query := `
		SELECT i.id, i.customer_id, i.amount, i.status, i.date, c.name, c.email
		FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE $1 = '' OR c.name ILIKE '%' || $1 || '%' OR c.email ILIKE '%' || $1 || '%'
		ORDER BY i.date DESC, i.id
		LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*repository.InvoiceWithCustomer
	for rows.Next() {
		var row repository.InvoiceWithCustomer
		if err := rows.Scan(
			&row.Invoice.ID, &row.Invoice.CustomerID, &row.Invoice.AmountCents,
			&row.Invoice.Status, &row.Invoice.Date, &row.CustomerName, &row.CustomerEmail,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

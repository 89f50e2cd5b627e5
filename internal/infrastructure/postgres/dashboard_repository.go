package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/panel-admin-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para las tarjetas del dashboard.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador de agregados.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// Summary devuelve conteos y totales en una sola ida a la base. Los totales
// salen como NUMERIC ya en unidades mayores (amount guarda centavos) y se
// escanean como shopspring/decimal vía el codec registrado en el pool.
func (r *DashboardRepo) Summary(ctx context.Context) (*repository.DashboardSummary, error) {
	const query = `
	SELECT
	    (SELECT COUNT(*) FROM invoices)                                                      AS invoice_count,
	    (SELECT COUNT(*) FROM customers)                                                     AS customer_count,
	    (SELECT COUNT(*) FROM users)                                                         AS user_count,
	    (SELECT COALESCE(SUM(amount) FILTER (WHERE status = 'paid'), 0)::numeric / 100
	     FROM invoices)                                                                       AS paid_total,
	    (SELECT COALESCE(SUM(amount) FILTER (WHERE status = 'pending'), 0)::numeric / 100
	     FROM invoices)                                                                       AS pending_total`

	var s repository.DashboardSummary
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.InvoiceCount, &s.CustomerCount, &s.UserCount, &s.PaidTotal, &s.PendingTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return &s, nil
}

package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardSummary datos agregados para las tarjetas del dashboard.
// Los totales vienen como NUMERIC de PostgreSQL ya convertidos a moneda
// (no a centavos) vía el codec de shopspring/decimal.
type DashboardSummary struct {
	InvoiceCount  int64
	CustomerCount int64
	UserCount     int64
	PaidTotal     decimal.Decimal
	PendingTotal  decimal.Decimal
}

// DashboardRepository consultas de solo lectura para el dashboard.
type DashboardRepository interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}

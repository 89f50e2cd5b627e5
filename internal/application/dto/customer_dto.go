package dto

// CustomerResponse salida de un cliente (para el select del formulario de facturas).
type CustomerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DashboardSummaryResponse tarjetas del dashboard. Los totales van formateados
// en unidades mayores con dos decimales.
type DashboardSummaryResponse struct {
	InvoiceCount  int64  `json:"invoice_count"`
	CustomerCount int64  `json:"customer_count"`
	UserCount     int64  `json:"user_count"`
	PaidTotal     string `json:"paid_total"`
	PendingTotal  string `json:"pending_total"`
}

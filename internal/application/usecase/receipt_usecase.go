package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/panel-admin-api/internal/application/dto"
	"github.com/jhoicas/panel-admin-api/internal/domain"
	"github.com/jhoicas/panel-admin-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de una factura.
type ReceiptUseCase struct {
	invoices  repository.InvoiceRepository
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso inyectando el generador PDF.
func NewReceiptUseCase(invoices repository.InvoiceRepository, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{invoices: invoices, generator: generator}
}

// Download resuelve la factura con su cliente y genera el PDF.
// Retorna domain.ErrNotFound si la factura no existe.
func (uc *ReceiptUseCase) Download(ctx context.Context, invoiceID string) (pdf []byte, filename string, err error) {
	row, err := uc.invoices.GetWithCustomer(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener factura: %w", err)
	}
	if row == nil {
		return nil, "", domain.ErrNotFound
	}
	data := ReceiptData{
		InvoiceID:     row.Invoice.ID,
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		Amount:        dto.FormatCents(row.Invoice.AmountCents),
		Status:        row.Invoice.Status,
		Date:          row.Invoice.Date.Format("2006-01-02"),
	}
	pdf, err = uc.generator.Generate(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: generar PDF: %w", err)
	}
	return pdf, fmt.Sprintf("invoice-%s.pdf", row.Invoice.ID), nil
}

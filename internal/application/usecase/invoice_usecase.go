package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/panel-admin-api/internal/application/dto"
	"github.com/jhoicas/panel-admin-api/internal/application/validate"
	"github.com/jhoicas/panel-admin-api/internal/domain/entity"
	"github.com/jhoicas/panel-admin-api/internal/domain/repository"
	"github.com/jhoicas/panel-admin-api/pkg/logger"
)

// Mensajes de cara al usuario para mutaciones de facturas.
const (
	MsgCreateInvoiceMissing = "Missing fields. Failed to create invoice."
	MsgCreateInvoiceFailed  = "Failed to create invoice."
	MsgUpdateInvoiceMissing = "Missing fields. Failed to update invoice."
	MsgUpdateInvoiceFailed  = "Failed to update invoice."
	MsgInvoiceDeleted       = "Invoice deleted."
	MsgDeleteInvoiceFailed  = "Failed to delete invoice."

	msgAmountNotPositive = "Please enter an amount greater than $0."
)

// InvoiceUseCase mutaciones y lecturas de facturas del panel.
type InvoiceUseCase struct {
	repo  repository.InvoiceRepository
	inval Invalidator
	val   *validate.Validator
	log   *logger.Logger
	now   func() time.Time
}

// NewInvoiceUseCase construye el caso de uso. La fecha de creación la asigna
// el servidor vía now (inyectable en tests).
func NewInvoiceUseCase(repo repository.InvoiceRepository, inval Invalidator, val *validate.Validator, log *logger.Logger) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, inval: inval, val: val, log: log, now: time.Now}
}

// validateInput valida el formulario y coacciona el monto a centavos.
// Devuelve los errores por campo acumulados en una sola pasada.
func (uc *InvoiceUseCase) validateInput(in dto.InvoiceRequest) (int64, dto.FieldErrors) {
	errs := uc.val.Struct(in)
	var cents int64
	if in.Amount != "" {
		c, err := in.AmountCents()
		if err != nil {
			if errs == nil {
				errs = dto.FieldErrors{}
			}
			errs["amount"] = append(errs["amount"], msgAmountNotPositive)
		} else {
			cents = c
		}
	}
	return cents, errs
}

// Create valida, convierte el monto a unidades menores, asigna la fecha del
// servidor e inserta. En éxito invalida el listado y redirige.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.InvoiceRequest) dto.MutationResult {
	cents, errs := uc.validateInput(in)
	if len(errs) > 0 {
		return dto.ValidationFailed(MsgCreateInvoiceMissing, errs)
	}
	invoice := &entity.Invoice{
		ID:          uuid.New().String(),
		CustomerID:  in.CustomerID,
		AmountCents: cents,
		Status:      in.Status,
		Date:        uc.now().UTC().Truncate(24 * time.Hour),
	}
	if err := uc.repo.Create(ctx, invoice); err != nil {
		uc.log.Error().Err(err).Msg("insertar factura")
		return dto.FailedResult(MsgCreateInvoiceFailed)
	}
	uc.inval.Invalidate(RouteInvoices)
	return dto.RedirectResult(RouteInvoices)
}

// Update reemplaza los campos mutables de la fila con ese id. No hay
// pre-chequeo de existencia: editar un id inexistente es un no-op silencioso
// a nivel de store.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.InvoiceRequest) dto.MutationResult {
	cents, errs := uc.validateInput(in)
	if len(errs) > 0 {
		return dto.ValidationFailed(MsgUpdateInvoiceMissing, errs)
	}
	invoice := &entity.Invoice{
		ID:          id,
		CustomerID:  in.CustomerID,
		AmountCents: cents,
		Status:      in.Status,
	}
	if err := uc.repo.Update(ctx, invoice); err != nil {
		uc.log.Error().Err(err).Str("invoice_id", id).Msg("actualizar factura")
		return dto.FailedResult(MsgUpdateInvoiceFailed)
	}
	uc.inval.Invalidate(RouteInvoices)
	return dto.RedirectResult(RouteInvoices)
}

// Delete borra por id; idempotente, confirma también con id inexistente. Sin redirect.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) dto.MutationResult {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Error().Err(err).Str("invoice_id", id).Msg("borrar factura")
		return dto.FailedResult(MsgDeleteInvoiceFailed)
	}
	uc.inval.Invalidate(RouteInvoices)
	return dto.OKResult(MsgInvoiceDeleted)
}

// GetByID obtiene una factura para precargar el formulario de edición.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	return invoiceToResponse(invoice), nil
}

// List lista facturas con el cliente resuelto; search filtra por nombre o
// email del cliente.
func (uc *InvoiceUseCase) List(ctx context.Context, search string, page dto.PageRequest) ([]*dto.InvoiceListItem, error) {
	page.DefaultPage()
	rows, err := uc.repo.ListWithCustomer(ctx, search, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceListItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, &dto.InvoiceListItem{
			InvoiceResponse: *invoiceToResponse(&r.Invoice),
			CustomerName:    r.CustomerName,
			CustomerEmail:   r.CustomerEmail,
		})
	}
	return out, nil
}

func invoiceToResponse(i *entity.Invoice) *dto.InvoiceResponse {
	if i == nil {
		return nil
	}
	return &dto.InvoiceResponse{
		ID:         i.ID,
		CustomerID: i.CustomerID,
		Amount:     dto.FormatCents(i.AmountCents),
		Status:     i.Status,
		Date:       i.Date.Format("2006-01-02"),
	}
}

package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/panel-admin-api/internal/application/dto"
	"github.com/jhoicas/panel-admin-api/internal/application/usecase"
	"github.com/jhoicas/panel-admin-api/internal/domain"
	"github.com/jhoicas/panel-admin-api/internal/infrastructure/viewcache"
)

// InvoiceHandler maneja las mutaciones y lecturas de facturas (protegido).
type InvoiceHandler struct {
	uc       *usecase.InvoiceUseCase
	receipts *usecase.ReceiptUseCase
	views    *viewcache.Registry
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *usecase.InvoiceUseCase, receipts *usecase.ReceiptUseCase, views *viewcache.Registry) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, receipts: receipts, views: views}
}

// Create godoc
// @Summary      Crear factura
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InvoiceRequest  true  "customer_id, amount, status"
// @Success      303
// @Failure      400   {object}  dto.MutationResult
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	return writeMutation(c, h.uc.Create(c.Context(), in))
}

// Update godoc
// @Summary      Editar factura (reemplazo completo de los campos mutables)
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "invoice id"
// @Param        body  body  dto.InvoiceRequest  true  "customer_id, amount, status"
// @Success      303
// @Failure      400   {object}  dto.MutationResult
// @Router       /api/invoices/{id} [put]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id required"})
	}
	var in dto.InvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	return writeMutation(c, h.uc.Update(c.Context(), id, in))
}

// Delete godoc
// @Summary      Borrar factura (idempotente)
// @Tags         invoices
// @Produce      json
// @Param        id  path  string  true  "invoice id"
// @Success      200  {object}  dto.MutationResult
// @Router       /api/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id required"})
	}
	return writeMutation(c, h.uc.Delete(c.Context(), id))
}

// GetByID godoc
// @Summary      Obtener factura (precarga del formulario de edición)
// @Tags         invoices
// @Produce      json
// @Param        id  path  string  true  "invoice id"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	invoice, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if invoice == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invoice not found"})
	}
	return c.JSON(invoice)
}

// List godoc
// @Summary      Listar facturas con el cliente resuelto
// @Tags         invoices
// @Produce      json
// @Param        query   query  string  false  "filtro por nombre o email del cliente"
// @Param        limit   query  int     false  "máx. filas"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {array}  dto.InvoiceListItem
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	search := c.Query("query")

	cacheable := search == "" && page.Limit == 0 && page.Offset == 0
	if cacheable {
		if payload, ok := h.views.Get(usecase.RouteInvoices); ok {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(payload)
		}
	}

	invoices, err := h.uc.List(c.Context(), search, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if cacheable {
		if payload, err := json.Marshal(invoices); err == nil {
			h.views.Set(usecase.RouteInvoices, payload)
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(payload)
		}
	}
	return c.JSON(invoices)
}

// Receipt godoc
// @Summary      Descargar el comprobante PDF de una factura
// @Tags         invoices
// @Produce      application/pdf
// @Param        id  path  string  true  "invoice id"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	pdfBytes, filename, err := h.receipts.Download(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invoice not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdfBytes)
}

package dto

// FieldErrors errores de validación por campo (clave = nombre JSON del campo).
type FieldErrors map[string][]string

// MutationKind discrimina el resultado de una mutación.
type MutationKind string

const (
	MutationRedirect MutationKind = "redirect"
	MutationOK       MutationKind = "ok"
	MutationError    MutationKind = "error"
)

// Códigos de error de mutación.
const (
	CodeValidation     = "VALIDATION"
	CodeNotFound       = "NOT_FOUND"
	CodeMutationFailed = "MUTATION_FAILED"
)

// MutationResult resultado discriminado de una mutación. El redirect es un
// valor que el caller decide cómo ejecutar, no una salida no-local.
type MutationResult struct {
	Kind     MutationKind `json:"kind"`
	Redirect string       `json:"redirect,omitempty"`
	Code     string       `json:"code,omitempty"`
	Message  string       `json:"message,omitempty"`
	Errors   FieldErrors  `json:"errors,omitempty"`
}

// RedirectResult mutación exitosa que termina navegando al listado.
func RedirectResult(target string) MutationResult {
	return MutationResult{Kind: MutationRedirect, Redirect: target}
}

// OKResult mutación exitosa con mensaje de confirmación (sin redirect).
func OKResult(message string) MutationResult {
	return MutationResult{Kind: MutationOK, Message: message}
}

// ValidationFailed entrada inválida: mensaje genérico + errores por campo.
func ValidationFailed(message string, errs FieldErrors) MutationResult {
	return MutationResult{Kind: MutationError, Code: CodeValidation, Message: message, Errors: errs}
}

// NotFoundResult el registro objetivo no existe.
func NotFoundResult(message string) MutationResult {
	return MutationResult{Kind: MutationError, Code: CodeNotFound, Message: message}
}

// FailedResult fallo genérico de la mutación (persistencia, unicidad, etc.;
// no se distinguen de cara al caller).
func FailedResult(message string) MutationResult {
	return MutationResult{Kind: MutationError, Code: CodeMutationFailed, Message: message}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP para fallos fuera del flujo de mutación.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

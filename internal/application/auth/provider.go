package auth

import (
	"context"
	"fmt"

	"github.com/jhoicas/panel-admin-api/internal/domain/entity"
)

// Kind clasifica el fallo del proveedor de identidad. Es un conjunto cerrado:
// el caso de uso lo resuelve con un switch exhaustivo, no inspeccionando tipos.
type Kind string

const (
	// KindCredentialsSignin credenciales rechazadas (email o password incorrectos).
	KindCredentialsSignin Kind = "CredentialsSignin"
	// KindCallbackRoute fallo del propio proveedor al completar el sign-in.
	KindCallbackRoute Kind = "CallbackRouteError"
	// KindUnknown fallo del proveedor sin clasificación específica.
	KindUnknown Kind = "Unknown"
)

// ProviderError error tipado que el proveedor de identidad usa para señalar
// fallos. Cualquier error que no sea un ProviderError no proviene del
// proveedor y se propaga sin tocar.
type ProviderError struct {
	Kind Kind
	Err  error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("auth: %s", e.Kind)
	}
	return fmt.Sprintf("auth: %s: %v", e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Session credenciales emitidas tras un sign-in correcto.
type Session struct {
	Token string
	User  entity.User
}

// IdentityProvider puerto del mecanismo externo de sign-in.
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
}

package auth

import (
	"context"
	"errors"

	"github.com/jhoicas/panel-admin-api/internal/application/dto"
)

// Mensajes fijos de cara al usuario del flujo de sign-in.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgSomethingWentWrong = "Something went wrong."
)

// AuthUseCase clasifica el resultado del proveedor de identidad.
type AuthUseCase struct {
	provider IdentityProvider
}

// NewAuthUseCase construye el caso de uso sobre el puerto del proveedor.
func NewAuthUseCase(provider IdentityProvider) *AuthUseCase {
	return &AuthUseCase{provider: provider}
}

// Authenticate delega el sign-in al proveedor y clasifica su fallo en dos
// resultados observables: KindCredentialsSignin produce MsgInvalidCredentials
// y cualquier otro Kind del proveedor MsgSomethingWentWrong. Un error ajeno
// al proveedor se propaga sin tocar.
func (uc *AuthUseCase) Authenticate(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, string, error) {
	session, err := uc.provider.SignIn(ctx, in.Email, in.Password)
	if err != nil {
		var pErr *ProviderError
		if !errors.As(err, &pErr) {
			return nil, "", err
		}
		switch pErr.Kind {
		case KindCredentialsSignin:
			return nil, MsgInvalidCredentials, nil
		default:
			return nil, MsgSomethingWentWrong, nil
		}
	}
	return &dto.LoginResponse{
		Token: session.Token,
		User: dto.UserResponse{
			ID:    session.User.ID,
			Name:  session.User.Name,
			Email: session.User.Email,
		},
	}, "", nil
}

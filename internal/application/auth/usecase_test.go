package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-admin-api/internal/application/auth"
	"github.com/jhoicas/panel-admin-api/internal/application/dto"
	"github.com/jhoicas/panel-admin-api/internal/domain/entity"
)

// fakeProvider devuelve lo que se le configure, sin tocar credenciales.
type fakeProvider struct {
	session *auth.Session
	err     error
}

func (p *fakeProvider) SignIn(_ context.Context, _, _ string) (*auth.Session, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.session, nil
}

func login() dto.LoginRequest {
	return dto.LoginRequest{Email: "amy@example.com", Password: "secret123"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación del fallo del proveedor (conjunto cerrado de variantes).
// ──────────────────────────────────────────────────────────────────────────────

// CredentialsSignin produce exactamente el literal "Invalid credentials.".
func TestAuthenticate_CredencialesInvalidas(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeProvider{
		err: &auth.ProviderError{Kind: auth.KindCredentialsSignin},
	})

	out, msg, err := uc.Authenticate(context.Background(), login())

	require.NoError(t, err)
	assert.Nil(t, out)
	assert.Equal(t, "Invalid credentials.", msg)
}

// Cualquier otro Kind del proveedor produce exactamente "Something went wrong.".
func TestAuthenticate_OtroFalloDelProveedor(t *testing.T) {
	for _, kind := range []auth.Kind{auth.KindCallbackRoute, auth.KindUnknown} {
		uc := auth.NewAuthUseCase(&fakeProvider{
			err: &auth.ProviderError{Kind: kind, Err: errors.New("boom")},
		})

		out, msg, err := uc.Authenticate(context.Background(), login())

		require.NoError(t, err)
		assert.Nil(t, out)
		assert.Equal(t, "Something went wrong.", msg, "kind %s", kind)
	}
}

// Un error que no viene del proveedor se propaga sin tocar.
func TestAuthenticate_ErrorAjenoSePropaga(t *testing.T) {
	cause := errors.New("context deadline exceeded")
	uc := auth.NewAuthUseCase(&fakeProvider{err: cause})

	out, msg, err := uc.Authenticate(context.Background(), login())

	assert.Nil(t, out)
	assert.Empty(t, msg)
	assert.ErrorIs(t, err, cause)
}

func TestAuthenticate_Exitoso(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeProvider{session: &auth.Session{
		Token: "signed-token",
		User:  entity.User{ID: "u-1", Name: "Amy Burns", Email: "amy@example.com"},
	}})

	out, msg, err := uc.Authenticate(context.Background(), login())

	require.NoError(t, err)
	assert.Empty(t, msg)
	require.NotNil(t, out)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, "u-1", out.User.ID)
}

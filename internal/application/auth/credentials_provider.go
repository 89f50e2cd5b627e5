package auth

import (
	"context"

	"github.com/jhoicas/panel-admin-api/internal/domain"
	"github.com/jhoicas/panel-admin-api/internal/domain/repository"
	"github.com/jhoicas/panel-admin-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para la emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

var _ IdentityProvider = (*CredentialsProvider)(nil)

// CredentialsProvider implementación de IdentityProvider respaldada por la
// tabla de usuarios: bcrypt para verificar el password y JWT HS256 para la sesión.
type CredentialsProvider struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewCredentialsProvider construye el proveedor.
func NewCredentialsProvider(users repository.UserRepository, jwtCfg JWTConfig) *CredentialsProvider {
	return &CredentialsProvider{users: users, jwtCfg: jwtCfg}
}

// SignIn verifica email/password y emite la sesión. Todos los fallos salen
// como ProviderError; un email desconocido y un password incorrecto son
// indistinguibles (ambos KindCredentialsSignin).
func (p *CredentialsProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, &ProviderError{Kind: KindCredentialsSignin, Err: domain.ErrInvalidInput}
	}
	user, err := p.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, &ProviderError{Kind: KindCallbackRoute, Err: err}
	}
	if user == nil {
		return nil, &ProviderError{Kind: KindCredentialsSignin, Err: domain.ErrUserNotFound}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, &ProviderError{Kind: KindCredentialsSignin, Err: domain.ErrUnauthorized}
	}
	token, err := jwt.Generate(p.jwtCfg.Secret, user.ID, user.Email, p.jwtCfg.Issuer, p.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, &ProviderError{Kind: KindCallbackRoute, Err: err}
	}
	return &Session{Token: token, User: *user}, nil
}

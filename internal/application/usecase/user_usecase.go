package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/jhoicas/panel-admin-api/internal/application/dto"
	"github.com/jhoicas/panel-admin-api/internal/application/validate"
	"github.com/jhoicas/panel-admin-api/internal/domain/entity"
	"github.com/jhoicas/panel-admin-api/internal/domain/repository"
	"github.com/jhoicas/panel-admin-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// Mensajes de cara al usuario para mutaciones de usuarios. La violación de
// unicidad no se distingue de otros fallos: ambos devuelven el genérico.
const (
	MsgCreateUserMissing = "Missing fields. Failed to create user."
	MsgCreateUserFailed  = "Failed to create user."
	MsgUpdateUserMissing = "Missing fields. Failed to update user."
	MsgUpdateUserFailed  = "Failed to update user."
	MsgUserNotFound      = "User not found."
	MsgUserDeleted       = "User deleted."
	MsgDeleteUserFailed  = "Failed to delete user."
)

// UserConfig política de mutación de usuarios.
type UserConfig struct {
	// RehashOnUpdate: en true cada update re-hashea y reescribe el password,
	// incluso si el caller no quería cambiarlo (rotación forzada); el campo
	// pasa a ser obligatorio en la edición. En false, un password en blanco
	// conserva el hash existente.
	RehashOnUpdate bool
}

// UserUseCase mutaciones de usuarios del panel.
type UserUseCase struct {
	repo  repository.UserRepository
	inval Invalidator
	val   *validate.Validator
	cfg   UserConfig
	log   *logger.Logger
}

// NewUserUseCase construye el caso de uso con sus dependencias inyectadas.
func NewUserUseCase(repo repository.UserRepository, inval Invalidator, val *validate.Validator, cfg UserConfig, log *logger.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, inval: inval, val: val, cfg: cfg, log: log}
}

// Create valida, pre-chequea unicidad del email, hashea el password con
// bcrypt (costo 10) e inserta. En éxito invalida el listado y redirige.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) dto.MutationResult {
	if errs := uc.val.Struct(in); errs != nil {
		return dto.ValidationFailed(MsgCreateUserMissing, errs)
	}
	count, err := uc.repo.CountByEmail(ctx, in.Email)
	if err != nil {
		uc.log.Error().Err(err).Msg("contar usuarios por email")
		return dto.FailedResult(MsgCreateUserFailed)
	}
	if count > 0 {
		return dto.FailedResult(MsgCreateUserFailed)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.log.Error().Err(err).Msg("hashear password")
		return dto.FailedResult(MsgCreateUserFailed)
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	// El índice único en users.email cierra la carrera entre el pre-chequeo y
	// el insert: un duplicado concurrente llega aquí como error y cae en el
	// mismo fallo genérico.
	if err := uc.repo.Create(ctx, user); err != nil {
		uc.log.Error().Err(err).Msg("insertar usuario")
		return dto.FailedResult(MsgCreateUserFailed)
	}
	uc.inval.Invalidate(RouteUsers)
	return dto.RedirectResult(RouteUsers)
}

// Update reemplaza los campos mutables del usuario. El redirect solo ocurre
// en éxito: un not-found o un fallo de persistencia vuelve al caller como
// resultado de error, nunca enmascarado por la navegación.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) dto.MutationResult {
	errs := uc.val.Struct(in)
	if uc.cfg.RehashOnUpdate && in.Password == "" {
		if errs == nil {
			errs = dto.FieldErrors{}
		}
		errs["password"] = append(errs["password"], "Password must be at least 6 characters.")
	}
	if len(errs) > 0 {
		return dto.ValidationFailed(MsgUpdateUserMissing, errs)
	}

	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.log.Error().Err(err).Str("user_id", id).Msg("buscar usuario a editar")
		return dto.FailedResult(MsgUpdateUserFailed)
	}
	if current == nil {
		return dto.NotFoundResult(MsgUserNotFound)
	}

	// La unicidad solo se re-chequea si el email cambia.
	if in.Email != current.Email {
		count, err := uc.repo.CountByEmail(ctx, in.Email)
		if err != nil {
			uc.log.Error().Err(err).Msg("contar usuarios por email")
			return dto.FailedResult(MsgUpdateUserFailed)
		}
		if count > 0 {
			return dto.FailedResult(MsgUpdateUserFailed)
		}
	}

	hash := current.PasswordHash
	if uc.cfg.RehashOnUpdate || in.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			uc.log.Error().Err(err).Msg("hashear password")
			return dto.FailedResult(MsgUpdateUserFailed)
		}
		hash = string(h)
	}

	user := &entity.User{ID: id, Name: in.Name, Email: in.Email, PasswordHash: hash}
	if err := uc.repo.Update(ctx, user); err != nil {
		uc.log.Error().Err(err).Str("user_id", id).Msg("actualizar usuario")
		return dto.FailedResult(MsgUpdateUserFailed)
	}
	uc.inval.Invalidate(RouteUsers)
	return dto.RedirectResult(RouteUsers)
}

// Delete borra por id sin chequeo de existencia: borrar un id inexistente
// también confirma (delete idempotente). Sin redirect.
func (uc *UserUseCase) Delete(ctx context.Context, id string) dto.MutationResult {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.log.Error().Err(err).Str("user_id", id).Msg("borrar usuario")
		return dto.FailedResult(MsgDeleteUserFailed)
	}
	uc.inval.Invalidate(RouteUsers)
	return dto.OKResult(MsgUserDeleted)
}

// GetByID obtiene un usuario para precargar el formulario de edición.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return userToResponse(user), nil
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.UserResponse, error) {
	page.DefaultPage()
	users, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userToResponse(u))
	}
	return out, nil
}

func userToResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-admin-api/internal/application/dto"
	"github.com/jhoicas/panel-admin-api/internal/application/usecase"
	"github.com/jhoicas/panel-admin-api/internal/application/validate"
	"github.com/jhoicas/panel-admin-api/internal/domain/entity"
	"github.com/jhoicas/panel-admin-api/internal/infrastructure/viewcache"
	apphttp "github.com/jhoicas/panel-admin-api/internal/interfaces/http"
	"github.com/jhoicas/panel-admin-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de repositorio en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	rows map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{rows: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.rows[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.rows {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) CountByEmail(_ context.Context, email string) (int, error) {
	n := 0
	for _, u := range r.rows {
		if u.Email == email {
			n++
		}
	}
	return n, nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	cp := *u
	r.rows[u.ID] = &cp
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	delete(r.rows, id)
	return nil
}

func (r *memUserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.rows))
	for _, u := range r.rows {
		cp := *u
		out = append(out, &cp)
	}
	_ = limit
	_ = offset
	return out, nil
}

// buildUserApp monta el handler de usuarios sin middleware de auth: aquí se
// prueba la semántica del handler, el middleware tiene sus propios tests.
func buildUserApp(repo *memUserRepo) (*fiber.App, *viewcache.Registry) {
	views := viewcache.New()
	uc := usecase.NewUserUseCase(repo, views, validate.New(), usecase.UserConfig{RehashOnUpdate: true}, logger.Nop())
	h := apphttp.NewUserHandler(uc, views)

	app := fiber.New()
	users := app.Group("/api/users")
	users.Get("/", h.List)
	users.Post("/", h.Create)
	users.Get("/:id", h.GetByID)
	users.Put("/:id", h.Update)
	users.Delete("/:id", h.Delete)
	return app, views
}

func jsonRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UserHandler
// ──────────────────────────────────────────────────────────────────────────────

// Creación exitosa: 303 See Other con Location al listado.
func TestUserHandler_Create_Exitoso_Redirige303(t *testing.T) {
	repo := newMemUserRepo()
	app, _ := buildUserApp(repo)

	req := jsonRequest(t, http.MethodPost, "/api/users",
		`{"name":"Amy Burns","email":"amy@example.com","password":"secret123"}`)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, usecase.RouteUsers, resp.Header.Get(fiber.HeaderLocation))
	assert.Len(t, repo.rows, 1, "debe haberse insertado la fila")
}

// Entrada inválida: 400 con errores por campo y sin escritura.
func TestUserHandler_Create_Invalido_Retorna400ConErrores(t *testing.T) {
	repo := newMemUserRepo()
	app, _ := buildUserApp(repo)

	req := jsonRequest(t, http.MethodPost, "/api/users",
		`{"name":"Amy","email":"no-es-email","password":"123"}`)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(fiber.HeaderLocation), "no debe redirigir")
	assert.Empty(t, repo.rows, "no debe haberse insertado nada")

	var body dto.MutationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, dto.CodeValidation, body.Code)
	assert.Equal(t, "Missing fields. Failed to create user.", body.Message)
	assert.Contains(t, body.Errors, "name")
	assert.Contains(t, body.Errors, "email")
	assert.Contains(t, body.Errors, "password")
}

// Editar un usuario inexistente: 404 y SIN redirect (el fallo no se enmascara
// con la navegación).
func TestUserHandler_Update_NoExiste_Retorna404SinRedirect(t *testing.T) {
	repo := newMemUserRepo()
	app, _ := buildUserApp(repo)

	req := jsonRequest(t, http.MethodPut, "/api/users/no-existe",
		`{"name":"Amy Burns","email":"amy@example.com","password":"secret123"}`)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(fiber.HeaderLocation))

	var body dto.MutationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, dto.CodeNotFound, body.Code)
	assert.Equal(t, "User not found.", body.Message)
}

// Edición exitosa: 303 con Location al listado.
func TestUserHandler_Update_Exitoso_Redirige303(t *testing.T) {
	repo := newMemUserRepo()
	repo.rows["u-1"] = &entity.User{ID: "u-1", Name: "Amy Burns", Email: "amy@example.com", PasswordHash: "hash"}
	app, _ := buildUserApp(repo)

	req := jsonRequest(t, http.MethodPut, "/api/users/u-1",
		`{"name":"Amy Burns Edited","email":"amy@example.com","password":"secret123"}`)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, usecase.RouteUsers, resp.Header.Get(fiber.HeaderLocation))
	assert.Equal(t, "Amy Burns Edited", repo.rows["u-1"].Name)
}

// Borrado: 200 con mensaje de confirmación, también para ids inexistentes.
func TestUserHandler_Delete_Retorna200ConMensaje(t *testing.T) {
	repo := newMemUserRepo()
	repo.rows["u-1"] = &entity.User{ID: "u-1", Name: "Amy Burns", Email: "amy@example.com", PasswordHash: "hash"}
	app, _ := buildUserApp(repo)

	for _, id := range []string{"u-1", "u-1"} { // segunda pasada: id ya borrado
		req := httptest.NewRequest(http.MethodDelete, "/api/users/"+id, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body dto.MutationResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()
		assert.Equal(t, "User deleted.", body.Message)
	}
	assert.Empty(t, repo.rows)
}

// El listado por defecto se cachea y una mutación lo invalida: la lectura
// posterior refleja la fila nueva.
func TestUserHandler_List_CacheInvalidadaTrasMutacion(t *testing.T) {
	repo := newMemUserRepo()
	app, views := buildUserApp(repo)

	// Primera lectura: lista vacía, puebla la caché.
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/users", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	_, ok := views.Get(usecase.RouteUsers)
	assert.True(t, ok, "la lectura por defecto debe poblar la caché")

	// Mutación: invalida la vista.
	req := jsonRequest(t, http.MethodPost, "/api/users",
		`{"name":"Amy Burns","email":"amy@example.com","password":"secret123"}`)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	_, ok = views.Get(usecase.RouteUsers)
	assert.False(t, ok, "la mutación debe invalidar la vista cacheada")

	// Lectura posterior: ve la fila nueva.
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/users", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out []dto.UserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, "amy@example.com", out[0].Email)
}

package viewcache_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/panel-admin-api/internal/infrastructure/viewcache"
)

func TestRegistry_SetGetInvalidate(t *testing.T) {
	reg := viewcache.New()

	_, ok := reg.Get("/dashboard/users")
	assert.False(t, ok, "registro vacío no debe acertar")

	reg.Set("/dashboard/users", []byte(`[{"id":"u-1"}]`))
	payload, ok := reg.Get("/dashboard/users")
	assert.True(t, ok)
	assert.Equal(t, []byte(`[{"id":"u-1"}]`), payload)

	reg.Invalidate("/dashboard/users")
	_, ok = reg.Get("/dashboard/users")
	assert.False(t, ok, "tras invalidar no debe acertar")
}

func TestRegistry_InvalidarClaveAusente_NoOp(t *testing.T) {
	reg := viewcache.New()
	reg.Invalidate("/dashboard/invoices")

	reg.Set("/dashboard/invoices", []byte("x"))
	_, ok := reg.Get("/dashboard/invoices")
	assert.True(t, ok)
}

func TestRegistry_ClavesIndependientes(t *testing.T) {
	reg := viewcache.New()
	reg.Set("/dashboard/users", []byte("usuarios"))
	reg.Set("/dashboard/invoices", []byte("facturas"))

	reg.Invalidate("/dashboard/invoices")

	payload, ok := reg.Get("/dashboard/users")
	assert.True(t, ok, "invalidar una clave no debe afectar a las demás")
	assert.Equal(t, []byte("usuarios"), payload)
}

// Ejercita lecturas, escrituras e invalidaciones concurrentes; el detector de
// carreras de go test se encarga del resto.
func TestRegistry_UsoConcurrente(t *testing.T) {
	reg := viewcache.New()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(3)
		key := fmt.Sprintf("/dashboard/view-%d", i%2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				reg.Set(key, []byte("payload"))
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				reg.Get(key)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				reg.Invalidate(key)
			}
		}()
	}
	wg.Wait()
}

// Package viewcache guarda la última representación serializada de cada vista
// de listado del panel. Tras una mutación, el use case invalida la clave de la
// ruta y la siguiente lectura recalcula la vista.
package viewcache

import "sync"

// Registry caché en memoria por clave de ruta. Seguro para uso concurrente.
type Registry struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// New construye un registro vacío.
func New() *Registry {
	return &Registry{entries: make(map[string][]byte)}
}

// Get devuelve la vista cacheada y si estaba presente.
func (r *Registry) Get(key string) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	payload, ok := r.entries[key]
	return payload, ok
}

// Set guarda la vista recién calculada para la clave.
func (r *Registry) Set(key string, payload []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = payload
}

// Invalidate marca la clave como obsoleta; Get deja de acertar hasta el
// próximo Set. Invalidar una clave ausente es un no-op.
func (r *Registry) Invalidate(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
}

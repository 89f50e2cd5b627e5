package repository

import (
	"context"

	"github.com/jhoicas/panel-admin-api/internal/domain/entity"
)

// CustomerRepository puerto de lectura de clientes (el panel no los muta).
type CustomerRepository interface {
	List(ctx context.Context) ([]*entity.Customer, error)
}

package usecase

import (
	"context"

	"github.com/jhoicas/panel-admin-api/internal/application/dto"
	"github.com/jhoicas/panel-admin-api/internal/domain/repository"
)

// CustomerUseCase lecturas de clientes (alimenta el select del formulario de facturas).
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List lista todos los clientes ordenados por nombre.
func (uc *CustomerUseCase) List(ctx context.Context) ([]*dto.CustomerResponse, error) {
	customers, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, &dto.CustomerResponse{ID: c.ID, Name: c.Name, Email: c.Email})
	}
	return out, nil
}

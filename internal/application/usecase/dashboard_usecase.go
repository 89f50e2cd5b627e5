package usecase

import (
	"context"

	"github.com/jhoicas/panel-admin-api/internal/application/dto"
	"github.com/jhoicas/panel-admin-api/internal/domain/repository"
)

// DashboardUseCase datos agregados para las tarjetas del dashboard.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Summary devuelve conteos y totales pagado/pendiente formateados.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	s, err := uc.repo.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardSummaryResponse{
		InvoiceCount:  s.InvoiceCount,
		CustomerCount: s.CustomerCount,
		UserCount:     s.UserCount,
		PaidTotal:     s.PaidTotal.StringFixed(2),
		PendingTotal:  s.PendingTotal.StringFixed(2),
	}, nil
}

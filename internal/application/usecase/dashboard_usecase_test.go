package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-admin-api/internal/application/usecase"
	"github.com/jhoicas/panel-admin-api/internal/domain/repository"
)

type fakeDashboardRepo struct {
	summary repository.DashboardSummary
	err     error
}

func (r *fakeDashboardRepo) Summary(_ context.Context) (*repository.DashboardSummary, error) {
	if r.err != nil {
		return nil, r.err
	}
	s := r.summary
	return &s, nil
}

func TestDashboardSummary_FormateaTotales(t *testing.T) {
	repo := &fakeDashboardRepo{summary: repository.DashboardSummary{
		InvoiceCount:  13,
		CustomerCount: 6,
		UserCount:     3,
		PaidTotal:     decimal.RequireFromString("118.00"),
		PendingTotal:  decimal.RequireFromString("1256.32"),
	}}
	uc := usecase.NewDashboardUseCase(repo)

	out, err := uc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(13), out.InvoiceCount)
	assert.Equal(t, "118.00", out.PaidTotal)
	assert.Equal(t, "1256.32", out.PendingTotal)
}

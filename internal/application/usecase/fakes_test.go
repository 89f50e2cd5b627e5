package usecase_test

import (
	"context"

	"github.com/jhoicas/panel-admin-api/internal/domain"
	"github.com/jhoicas/panel-admin-api/internal/domain/entity"
	"github.com/jhoicas/panel-admin-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia.
// ──────────────────────────────────────────────────────────────────────────────

type spyInvalidator struct {
	keys []string
}

func (s *spyInvalidator) Invalidate(key string) {
	s.keys = append(s.keys, key)
}

// fakeUserRepo implementación en memoria de repository.UserRepository.
// Replica el índice único de email del store real.
type fakeUserRepo struct {
	users     map[string]*entity.User
	createErr error
	getErr    error
	countErr  error
	updateErr error
	deleteErr error
	deleted   []string
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(seed ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range seed {
		cp := *u
		r.users[u.ID] = &cp
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, e := range r.users {
		if e.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) CountByEmail(_ context.Context, email string) (int, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	count := 0
	for _, u := range r.users {
		if u.Email == email {
			count++
		}
	}
	return count, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.users[u.ID]; ok {
		cp := *u
		r.users[u.ID] = &cp
	}
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, id)
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, _, _ int) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.users {
		cp := *u
		list = append(list, &cp)
	}
	return list, nil
}

// fakeInvoiceRepo implementación en memoria de repository.InvoiceRepository.
// El join con customers usa un nombre/email fijos.
type fakeInvoiceRepo struct {
	invoices      map[string]*entity.Invoice
	customerName  string
	customerEmail string
	createErr     error
	updateErr     error
	deleteErr     error
	updateCalls   []*entity.Invoice
	deleted       []string
}

var _ repository.InvoiceRepository = (*fakeInvoiceRepo)(nil)

func newFakeInvoiceRepo(seed ...*entity.Invoice) *fakeInvoiceRepo {
	r := &fakeInvoiceRepo{
		invoices:      make(map[string]*entity.Invoice),
		customerName:  "Delba de Oliveira",
		customerEmail: "delba@example.com",
	}
	for _, i := range seed {
		cp := *i
		r.invoices[i.ID] = &cp
	}
	return r
}

func (r *fakeInvoiceRepo) Create(_ context.Context, i *entity.Invoice) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *i
	r.invoices[i.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	i, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *fakeInvoiceRepo) GetWithCustomer(_ context.Context, id string) (*repository.InvoiceWithCustomer, error) {
	i, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	return &repository.InvoiceWithCustomer{
		Invoice:       *i,
		CustomerName:  r.customerName,
		CustomerEmail: r.customerEmail,
	}, nil
}

// Update replica el no-op silencioso del store: un id inexistente afecta cero filas.
func (r *fakeInvoiceRepo) Update(_ context.Context, i *entity.Invoice) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	cp := *i
	r.updateCalls = append(r.updateCalls, &cp)
	if existing, ok := r.invoices[i.ID]; ok {
		existing.CustomerID = i.CustomerID
		existing.AmountCents = i.AmountCents
		existing.Status = i.Status
	}
	return nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, id)
	delete(r.invoices, id)
	return nil
}

func (r *fakeInvoiceRepo) ListWithCustomer(_ context.Context, _ string, _, _ int) ([]*repository.InvoiceWithCustomer, error) {
	var list []*repository.InvoiceWithCustomer
	for _, i := range r.invoices {
		list = append(list, &repository.InvoiceWithCustomer{
			Invoice:       *i,
			CustomerName:  r.customerName,
			CustomerEmail: r.customerEmail,
		})
	}
	return list, nil
}

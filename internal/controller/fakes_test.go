package controller_test

import (
	"context"
	"sync"

	"github.com/lib/pq"

	appErrors "github.com/unclebandit/storefront-backend/internal/errors"
	"github.com/unclebandit/storefront-backend/internal/model"
)

var errBroken = &pq.Error{Code: "08006", Message: "connection failure"}

// memoryCustomerRepo mimics the cliente table: serial ids, RETURNING rows.
type memoryCustomerRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   []model.Customer
	fail   error
	calls  int
}

func (m *memoryCustomerRepo) ListAll(ctx context.Context) ([]model.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.fail != nil {
		return nil, m.fail
	}
	out := make([]model.Customer, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

func (m *memoryCustomerRepo) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.fail != nil {
		return nil, m.fail
	}
	m.nextID++
	row := *c
	row.ID = m.nextID
	m.rows = append(m.rows, row)
	return &row, nil
}

func (m *memoryCustomerRepo) Update(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.fail != nil {
		return nil, m.fail
	}
	for i := range m.rows {
		if m.rows[i].ID == c.ID {
			m.rows[i] = *c
			row := m.rows[i]
			return &row, nil
		}
	}
	return nil, appErrors.NewNotFound(model.ResourceCustomer, c.ID)
}

func (m *memoryCustomerRepo) Delete(ctx context.Context, id int64) (*model.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.fail != nil {
		return nil, m.fail
	}
	for i := range m.rows {
		if m.rows[i].ID == id {
			row := m.rows[i]
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return &row, nil
		}
	}
	return nil, appErrors.NewNotFound(model.ResourceCustomer, id)
}

type memoryProductRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   []model.Product
	fail   error
	calls  int
}

func (m *memoryProductRepo) ListAll(ctx context.Context) ([]model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.fail != nil {
		return nil, m.fail
	}
	out := make([]model.Product, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

func (m *memoryProductRepo) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.fail != nil {
		return nil, m.fail
	}
	m.nextID++
	row := *p
	row.ID = m.nextID
	m.rows = append(m.rows, row)
	return &row, nil
}

func (m *memoryProductRepo) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.fail != nil {
		return nil, m.fail
	}
	for i := range m.rows {
		if m.rows[i].ID == p.ID {
			m.rows[i] = *p
			row := m.rows[i]
			return &row, nil
		}
	}
	return nil, appErrors.NewNotFound(model.ResourceProduct, p.ID)
}

func (m *memoryProductRepo) Delete(ctx context.Context, id int64) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.fail != nil {
		return nil, m.fail
	}
	for i := range m.rows {
		if m.rows[i].ID == id {
			row := m.rows[i]
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return &row, nil
		}
	}
	return nil, appErrors.NewNotFound(model.ResourceProduct, id)
}

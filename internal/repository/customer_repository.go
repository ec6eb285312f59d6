package repository

import (
	"context"
	"fmt"

	"github.com/unclebandit/storefront-backend/internal/db"
	appErrors "github.com/unclebandit/storefront-backend/internal/errors"
	"github.com/unclebandit/storefront-backend/internal/model"
)

// CustomerRepositoryInterface defines methods used by service
type CustomerRepositoryInterface interface {
	ListAll(ctx context.Context) ([]model.Customer, error)
	Create(ctx context.Context, c *model.Customer) (*model.Customer, error)
	Update(ctx context.Context, c *model.Customer) (*model.Customer, error)
	Delete(ctx context.Context, id int64) (*model.Customer, error)
}

// CustomerRepository is the concrete implementation
type CustomerRepository struct {
	DB db.Gateway
}

const customerColumns = `id, nome, email, telefone, endereco, cidade, uf`

// ListAll returns every row in storage order.
func (r *CustomerRepository) ListAll(ctx context.Context) ([]model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM cliente`

	customers := []model.Customer{}
	if err := r.DB.SelectContext(ctx, &customers, query); err != nil {
		return nil, fmt.Errorf("list cliente: %w", err)
	}
	return customers, nil
}

// Create inserts c and returns the stored row, including the generated id.
func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	query := `
        INSERT INTO cliente (nome, email, telefone, endereco, cidade, uf)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING ` + customerColumns

	var rows []model.Customer
	if err := r.DB.SelectContext(ctx, &rows, query, c.Name, c.Email, c.Phone, c.Address, c.City, c.State); err != nil {
		return nil, fmt.Errorf("insert cliente: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert cliente: no row returned")
	}
	return &rows[0], nil
}

// Update overwrites every field of the row with c.ID.
func (r *CustomerRepository) Update(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	query := `
        UPDATE cliente
        SET nome = $1, email = $2, telefone = $3, endereco = $4, cidade = $5, uf = $6
        WHERE id = $7
        RETURNING ` + customerColumns

	var rows []model.Customer
	if err := r.DB.SelectContext(ctx, &rows, query, c.Name, c.Email, c.Phone, c.Address, c.City, c.State, c.ID); err != nil {
		return nil, fmt.Errorf("update cliente %d: %w", c.ID, err)
	}
	if len(rows) == 0 {
		return nil, appErrors.NewNotFound(model.ResourceCustomer, c.ID)
	}
	return &rows[0], nil
}

// Delete removes the row and returns it as it was just before removal.
func (r *CustomerRepository) Delete(ctx context.Context, id int64) (*model.Customer, error) {
	query := `DELETE FROM cliente WHERE id = $1 RETURNING ` + customerColumns

	var rows []model.Customer
	if err := r.DB.SelectContext(ctx, &rows, query, id); err != nil {
		return nil, fmt.Errorf("delete cliente %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, appErrors.NewNotFound(model.ResourceCustomer, id)
	}
	return &rows[0], nil
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)

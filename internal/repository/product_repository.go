package repository

import (
	"context"
	"fmt"

	"github.com/unclebandit/storefront-backend/internal/db"
	appErrors "github.com/unclebandit/storefront-backend/internal/errors"
	"github.com/unclebandit/storefront-backend/internal/model"
)

type ProductRepositoryInterface interface {
	ListAll(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, p *model.Product) (*model.Product, error)
	Update(ctx context.Context, p *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id int64) (*model.Product, error)
}

type ProductRepository struct {
	DB db.Gateway
}

const productColumns = `id, nome, marca, preco, peso`

func (r *ProductRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produto`

	products := []model.Product{}
	if err := r.DB.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("list produto: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *model.Product) (*model.Product, error) {
	query := `
        INSERT INTO produto (nome, marca, preco, peso)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + productColumns

	var rows []model.Product
	if err := r.DB.SelectContext(ctx, &rows, query, p.Name, p.Brand, p.Price, p.Weight); err != nil {
		return nil, fmt.Errorf("insert produto: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert produto: no row returned")
	}
	return &rows[0], nil
}

func (r *ProductRepository) Update(ctx context.Context, p *model.Product) (*model.Product, error) {
	query := `
        UPDATE produto
        SET nome = $1, marca = $2, preco = $3, peso = $4
        WHERE id = $5
        RETURNING ` + productColumns

	var rows []model.Product
	if err := r.DB.SelectContext(ctx, &rows, query, p.Name, p.Brand, p.Price, p.Weight, p.ID); err != nil {
		return nil, fmt.Errorf("update produto %d: %w", p.ID, err)
	}
	if len(rows) == 0 {
		return nil, appErrors.NewNotFound(model.ResourceProduct, p.ID)
	}
	return &rows[0], nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) (*model.Product, error) {
	query := `DELETE FROM produto WHERE id = $1 RETURNING ` + productColumns

	var rows []model.Product
	if err := r.DB.SelectContext(ctx, &rows, query, id); err != nil {
		return nil, fmt.Errorf("delete produto %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, appErrors.NewNotFound(model.ResourceProduct, id)
	}
	return &rows[0], nil
}

var _ ProductRepositoryInterface = (*ProductRepository)(nil)

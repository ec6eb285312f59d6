package service

import (
	"context"

	"github.com/unclebandit/storefront-backend/internal/model"
	"github.com/unclebandit/storefront-backend/internal/repository"

	appErrors "github.com/unclebandit/storefront-backend/internal/errors"
)

type ProductService struct {
	Repo   repository.ProductRepositoryInterface
	Events *EventPublisher
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.Repo.ListAll(ctx)
}

func (s *ProductService) Create(ctx context.Context, in *model.ProductInput) (*model.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, appErrors.NewValidation("invalid product", err)
	}

	created, err := s.Repo.Create(ctx, in.ToProduct(0))
	if err != nil {
		return nil, err
	}

	s.Events.Publish(model.ResourceProduct, model.ActionCreated, created.ID, created)
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, id int64, in *model.ProductInput) (*model.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, appErrors.NewValidation("invalid product", err)
	}

	updated, err := s.Repo.Update(ctx, in.ToProduct(id))
	if err != nil {
		return nil, err
	}

	s.Events.Publish(model.ResourceProduct, model.ActionUpdated, updated.ID, updated)
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) (*model.Product, error) {
	removed, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.Events.Publish(model.ResourceProduct, model.ActionDeleted, removed.ID, removed)
	return removed, nil
}

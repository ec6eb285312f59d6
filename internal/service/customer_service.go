package service

import (
	"context"

	"github.com/unclebandit/storefront-backend/internal/model"
	"github.com/unclebandit/storefront-backend/internal/repository"

	appErrors "github.com/unclebandit/storefront-backend/internal/errors"
)

type CustomerService struct {
	Repo   repository.CustomerRepositoryInterface
	Events *EventPublisher
}

func (s *CustomerService) List(ctx context.Context) ([]model.Customer, error) {
	return s.Repo.ListAll(ctx)
}

// Create rejects the input with a *appErrors.ValidationError before any
// statement is issued.
func (s *CustomerService) Create(ctx context.Context, in *model.CustomerInput) (*model.Customer, error) {
	if err := in.Validate(); err != nil {
		return nil, appErrors.NewValidation("invalid customer", err)
	}

	created, err := s.Repo.Create(ctx, in.ToCustomer(0))
	if err != nil {
		return nil, err
	}

	s.Events.Publish(model.ResourceCustomer, model.ActionCreated, created.ID, created)
	return created, nil
}

// Update returns *appErrors.ErrNotFound when no row has the id.
func (s *CustomerService) Update(ctx context.Context, id int64, in *model.CustomerInput) (*model.Customer, error) {
	if err := in.Validate(); err != nil {
		return nil, appErrors.NewValidation("invalid customer", err)
	}

	updated, err := s.Repo.Update(ctx, in.ToCustomer(id))
	if err != nil {
		return nil, err
	}

	s.Events.Publish(model.ResourceCustomer, model.ActionUpdated, updated.ID, updated)
	return updated, nil
}

func (s *CustomerService) Delete(ctx context.Context, id int64) (*model.Customer, error) {
	removed, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.Events.Publish(model.ResourceCustomer, model.ActionDeleted, removed.ID, removed)
	return removed, nil
}

// Package router wires the HTTP surface: customers and products CRUD plus
// the health probes.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/unclebandit/storefront-backend/internal/controller"
	"github.com/unclebandit/storefront-backend/internal/handler"
)

type Deps struct {
	Log       zerolog.Logger
	Customers *controller.CustomerController
	Products  *controller.ProductController
	Health    *handler.HealthHandler
}

func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(hlog.NewHandler(d.Log))
	r.Use(RequestID)
	r.Use(AccessLog())
	r.Use(middleware.Recoverer)

	if d.Health != nil {
		r.Get("/healthz", d.Health.Live)
		r.Get("/readyz", d.Health.Ready)
	}

	// Customer routes
	r.Route("/customers", func(r chi.Router) {
		r.Get("/", d.Customers.ListCustomers)
		r.Post("/", d.Customers.CreateCustomer)
		r.Put("/{id}", d.Customers.UpdateCustomer)
		r.Delete("/{id}", d.Customers.DeleteCustomer)
	})

	// Product routes
	r.Route("/products", func(r chi.Router) {
		r.Get("/", d.Products.ListProducts)
		r.Post("/", d.Products.CreateProduct)
		r.Put("/{id}", d.Products.UpdateProduct)
		r.Delete("/{id}", d.Products.DeleteProduct)
	})

	return r
}

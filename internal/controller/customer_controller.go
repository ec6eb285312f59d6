package controller

import (
	"fmt"
	"net/http"

	"github.com/unclebandit/storefront-backend/internal/model"
	"github.com/unclebandit/storefront-backend/internal/service"

	appErrors "github.com/unclebandit/storefront-backend/internal/errors"
)

const (
	msgCustomerNotFound  = "Cliente não encontrado."
	msgCustomerListErr   = "Erro ao buscar clientes"
	msgCustomerCreateErr = "Erro ao criar cliente"
	msgCustomerUpdateErr = "Erro ao atualizar cliente"
	msgCustomerDeleteErr = "Erro ao excluir cliente"
)

type CustomerController struct {
	CustomerService *service.CustomerService
}

func (c *CustomerController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := c.CustomerService.List(r.Context())
	if err != nil {
		writeStorageError(w, r, err, msgCustomerListErr)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (c *CustomerController) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var body model.CustomerInput
	if !decodeBody(r, &body) {
		writeMessage(w, http.StatusBadRequest, msgFieldsRequired)
		return
	}

	customer, err := c.CustomerService.Create(r.Context(), &body)
	switch {
	case appErrors.IsValidation(err):
		writeMessage(w, http.StatusBadRequest, msgFieldsRequired)
	case err != nil:
		writeStorageError(w, r, err, msgCustomerCreateErr)
	default:
		writeJSON(w, http.StatusCreated, customer)
	}
}

func (c *CustomerController) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeIDError(w, err)
		return
	}

	var body model.CustomerInput
	if !decodeBody(r, &body) {
		writeMessage(w, http.StatusBadRequest, msgFieldsRequired)
		return
	}

	customer, err := c.CustomerService.Update(r.Context(), id, &body)
	switch {
	case appErrors.IsValidation(err):
		writeMessage(w, http.StatusBadRequest, msgFieldsRequired)
	case appErrors.IsNotFound(err):
		writeMessage(w, http.StatusNotFound, msgCustomerNotFound)
	case err != nil:
		writeStorageError(w, r, err, msgCustomerUpdateErr)
	default:
		writeJSON(w, http.StatusOK, customer)
	}
}

func (c *CustomerController) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeIDError(w, err)
		return
	}

	_, err = c.CustomerService.Delete(r.Context(), id)
	switch {
	case appErrors.IsNotFound(err):
		writeMessage(w, http.StatusNotFound, msgCustomerNotFound)
	case err != nil:
		writeStorageError(w, r, err, msgCustomerDeleteErr)
	default:
		writeMessage(w, http.StatusOK, fmt.Sprintf("Cliente com ID %d excluído com sucesso", id))
	}
}

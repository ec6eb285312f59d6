package controller

import (
	"fmt"
	"net/http"

	"github.com/unclebandit/storefront-backend/internal/model"
	"github.com/unclebandit/storefront-backend/internal/service"

	appErrors "github.com/unclebandit/storefront-backend/internal/errors"
)

const (
	// create spells the fields out, update keeps the short message
	msgProductFieldsRequired = "Todos os campos são obrigatórios: nome, marca, preco, peso"

	msgProductNotFound  = "Produto não encontrado."
	msgProductListErr   = "Erro ao buscar produtos"
	msgProductCreateErr = "Erro ao criar produto"
	msgProductUpdateErr = "Erro ao atualizar produto"
	msgProductDeleteErr = "Erro ao excluir produto"
)

type ProductController struct {
	ProductService *service.ProductService
}

func (c *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := c.ProductService.List(r.Context())
	if err != nil {
		writeStorageError(w, r, err, msgProductListErr)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (c *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var body model.ProductInput
	if !decodeBody(r, &body) {
		writeMessage(w, http.StatusBadRequest, msgProductFieldsRequired)
		return
	}

	product, err := c.ProductService.Create(r.Context(), &body)
	switch {
	case appErrors.IsValidation(err):
		writeMessage(w, http.StatusBadRequest, msgProductFieldsRequired)
	case err != nil:
		writeStorageError(w, r, err, msgProductCreateErr)
	default:
		writeJSON(w, http.StatusCreated, product)
	}
}

func (c *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeIDError(w, err)
		return
	}

	var body model.ProductInput
	if !decodeBody(r, &body) {
		writeMessage(w, http.StatusBadRequest, msgFieldsRequired)
		return
	}

	product, err := c.ProductService.Update(r.Context(), id, &body)
	switch {
	case appErrors.IsValidation(err):
		writeMessage(w, http.StatusBadRequest, msgFieldsRequired)
	case appErrors.IsNotFound(err):
		writeMessage(w, http.StatusNotFound, msgProductNotFound)
	case err != nil:
		writeStorageError(w, r, err, msgProductUpdateErr)
	default:
		writeJSON(w, http.StatusOK, product)
	}
}

func (c *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeIDError(w, err)
		return
	}

	_, err = c.ProductService.Delete(r.Context(), id)
	switch {
	case appErrors.IsNotFound(err):
		writeMessage(w, http.StatusNotFound, msgProductNotFound)
	case err != nil:
		writeStorageError(w, r, err, msgProductDeleteErr)
	default:
		writeMessage(w, http.StatusOK, fmt.Sprintf("Produto com ID %d excluído com sucesso", id))
	}
}

package handler

import (
	"net/http"

	"github.com/AswiniParameswaran/GreenCart-System/internal/apperr"
	"github.com/AswiniParameswaran/GreenCart-System/internal/product"
	"github.com/AswiniParameswaran/GreenCart-System/internal/utils"
)

type ProductHandler struct {
	products product.Service
}

func NewProductHandler(products product.Service) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Price == nil {
		writeError(w, r, apperr.New(apperr.Invalid, "price is required"))
		return
	}

	caller, _ := utils.CallerFromContext(r.Context())
	p, err := h.products.CreateProduct(r.Context(), caller, product.CreateProductInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       *req.Price,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, Response{
		Status:  http.StatusOK,
		Message: "product created successfully",
		Product: toProductDTO(p),
	})
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	input := product.UpdateProductInput{Price: req.Price}
	if req.CategoryID != 0 {
		input.CategoryID = utils.UintPtr(req.CategoryID)
	}
	if req.Name != "" {
		input.Name = utils.StrPtr(req.Name)
	}
	if req.Description != "" {
		input.Description = utils.StrPtr(req.Description)
	}
	if req.ImageURL != "" {
		input.ImageURL = utils.StrPtr(req.ImageURL)
	}

	caller, _ := utils.CallerFromContext(r.Context())
	p, err := h.products.UpdateProduct(r.Context(), caller, id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, Response{
		Status:  http.StatusOK,
		Message: "product updated successfully",
		Product: toProductDTO(p),
	})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	caller, _ := utils.CallerFromContext(r.Context())
	if err := h.products.DeleteProduct(r.Context(), caller, id); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, Response{
		Status:  http.StatusOK,
		Message: "product deleted successfully",
	})
}

func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	p, err := h.products.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, Response{
		Status:  http.StatusOK,
		Message: "successful",
		Product: toProductDTO(p),
	})
}

func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.GetAllProducts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, Response{
		Status:      http.StatusOK,
		Message:     "successful",
		ProductList: toProductDTOs(products),
	})
}

func (h *ProductHandler) GetByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	products, err := h.products.GetProductsByCategory(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, Response{
		Status:      http.StatusOK,
		Message:     "successful",
		ProductList: toProductDTOs(products),
	})
}

func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.SearchProducts(r.Context(), r.URL.Query().Get("value"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, Response{
		Status:      http.StatusOK,
		Message:     "successful",
		ProductList: toProductDTOs(products),
	})
}

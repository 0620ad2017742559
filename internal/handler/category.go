package handler

import (
	"net/http"

	"github.com/AswiniParameswaran/GreenCart-System/internal/apperr"
	"github.com/AswiniParameswaran/GreenCart-System/internal/category"
	"github.com/AswiniParameswaran/GreenCart-System/internal/utils"

	"github.com/go-chi/chi/v5"
)

type CategoryHandler struct {
	categories category.Service
}

func NewCategoryHandler(categories category.Service) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	caller, _ := utils.CallerFromContext(r.Context())
	c, err := h.categories.CreateCategory(r.Context(), caller, req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, Response{
		Status:   http.StatusOK,
		Message:  "category created successfully",
		Category: toCategoryDTO(c),
	})
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	caller, _ := utils.CallerFromContext(r.Context())
	c, err := h.categories.UpdateCategory(r.Context(), caller, id, req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, Response{
		Status:   http.StatusOK,
		Message:  "category updated successfully",
		Category: toCategoryDTO(c),
	})
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	caller, _ := utils.CallerFromContext(r.Context())
	if err := h.categories.DeleteCategory(r.Context(), caller, id); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, Response{
		Status:  http.StatusOK,
		Message: "category deleted successfully",
	})
}

func (h *CategoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.categories.GetCategory(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, Response{
		Status:   http.StatusOK,
		Message:  "successful",
		Category: toCategoryDTO(c),
	})
}

func (h *CategoryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.GetAllCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	dtos := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, *toCategoryDTO(c))
	}

	writeJSON(w, Response{
		Status:       http.StatusOK,
		Message:      "successful",
		CategoryList: dtos,
	})
}

func pathID(r *http.Request) (uint, error) {
	id, err := utils.ToUint(chi.URLParam(r, "id"))
	if err != nil {
		return 0, apperr.Wrap(apperr.Invalid, "invalid id", err)
	}
	return id, nil
}

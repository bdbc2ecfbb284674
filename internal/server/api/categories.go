package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/fastfill/internal/shared/models"
)

// ListCategories - GET /categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	names, err := h.Svc.Categories()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, models.CategoriesResponse{Categories: names})
}

// CreateCategory - POST /categories.
//
// Ответы: 201; 400 пустое имя или неверный JSON; 409 имя занято.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.Svc.AddCategory(req.Name); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// ReorderCategories - PUT /categories.
func (h *Handler) ReorderCategories(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.Svc.ReorderCategories(req.Order); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RenameCategory - PUT /categories/{category}.
func (h *Handler) RenameCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.Svc.RenameCategory(param(r, "category"), req.Name); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteCategory - DELETE /categories/{category}.
//
// Ответы: 204; 404 нет категории; 409 последняя категория.
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DeleteCategory(param(r, "category")); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

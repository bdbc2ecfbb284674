package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/fastfill/internal/agent/service"
	serr "github.com/IvanChernomyrdin/fastfill/internal/shared/errors"
	"github.com/IvanChernomyrdin/fastfill/internal/shared/models"
)

// ListEntries - GET /categories/{category}/entries.
func (h *Handler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Svc.Entries(param(r, "category"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	resp := models.EntriesResponse{Entries: make([]models.Entry, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, models.Entry{
			Position:  e.Position,
			Title:     e.Title,
			Encrypted: e.Encrypted,
		})
	}
	WriteJSON(w, http.StatusOK, resp)
}

// CreateEntry - POST /categories/{category}/entries.
//
// Ответы: 201; 400 неверный заголовок; 401 нет пароля при encrypt;
// 404 нет категории; 409 заголовок занят.
func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEntryRequest
	if !h.decode(w, r, &req) {
		return
	}
	err := h.Svc.AddEntry(param(r, "category"), service.NewEntry{
		Title:    req.Title,
		Content:  req.Content,
		Encrypt:  req.Encrypt,
		Password: req.Password,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// ReorderEntries - PUT /categories/{category}/entries.
func (h *Handler) ReorderEntries(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.Svc.ReorderEntries(param(r, "category"), req.Order); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReadEntry - POST /categories/{category}/entries/{title}/read.
//
// POST, а не GET: пароль передаётся в теле, а не в URL.
// Ответы: 200; 401 нужен пароль; 403 неверный пароль; 404 нет записи.
func (h *Handler) ReadEntry(w http.ResponseWriter, r *http.Request) {
	var req models.ReadEntryRequest
	if r.ContentLength != 0 && !h.decode(w, r, &req) {
		return
	}

	title := param(r, "title")
	content, err := h.Svc.ReadEntry(param(r, "category"), title, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, models.ReadEntryResponse{Title: title, Content: content})
}

// UpdateEntry - PUT /categories/{category}/entries/{title}.
//
// Заголовок и содержимое меняются вместе: при ошибке не меняется ничего.
func (h *Handler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateEntryRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Title == nil && req.Content == nil {
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		return
	}

	err := h.Svc.UpdateEntry(param(r, "category"), param(r, "title"), req.Title, req.Content, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteEntry - DELETE /categories/{category}/entries/{title}.
func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DeleteEntry(param(r, "category"), param(r, "title")); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Package api реализует локальный HTTP API FastFill.
//
// Пакет отвечает за:
//   - регистрацию маршрутов (chi) и подключение middleware;
//   - разбор JSON-запросов и формирование JSON-ответов;
//   - маппинг доменных ошибок в HTTP-коды.
//
// Бизнес-логики здесь нет: всё делает EntryService.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/fastfill/internal/agent/service"
	"github.com/IvanChernomyrdin/fastfill/internal/server/middleware"
	serr "github.com/IvanChernomyrdin/fastfill/internal/shared/errors"
	"github.com/IvanChernomyrdin/fastfill/internal/shared/logger"
	"github.com/IvanChernomyrdin/fastfill/internal/shared/models"
)

// Все ответы с телом отдаются в JSON.
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// DefaultMaxBodyBytes - лимит тела запроса, если не задан в настройках.
const DefaultMaxBodyBytes int64 = 1 << 20

//go:generate mockgen -source=handler.go -destination=mocks/mock_service.go -package=mocks

// EntryService - операции хранилища, доступные через API.
type EntryService interface {
	Categories() ([]string, error)
	AddCategory(name string) error
	RenameCategory(oldName, newName string) error
	DeleteCategory(name string) error
	ReorderCategories(order []string) error

	Entries(category string) ([]service.EntryView, error)
	AddEntry(category string, in service.NewEntry) error
	ReadEntry(category, title, password string) (string, error)
	UpdateEntry(category, title string, newTitle, content *string, password string) error
	DeleteEntry(category, title string) error
	ReorderEntries(category string, order []string) error
}

// Handler агрегирует зависимости HTTP-слоя.
type Handler struct {
	Svc          EntryService
	Log          *logger.Logger
	Verifier     *middleware.JWTVerifier
	MaxBodyBytes int64
}

// NewHandler создаёт Handler. nil-логгер заменяется на Nop.
func NewHandler(svc EntryService, log *logger.Logger, verifier *middleware.JWTVerifier) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{
		Svc:          svc,
		Log:          log,
		Verifier:     verifier,
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

// StatusFor переводит доменную ошибку в HTTP-статус.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, serr.ErrDuplicateTitle),
		errors.Is(err, serr.ErrDuplicateCategory),
		errors.Is(err, serr.ErrLastCategory):
		return http.StatusConflict
	case errors.Is(err, serr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serr.ErrWrongPassword):
		return http.StatusForbidden
	case errors.Is(err, serr.ErrPasswordRequired), errors.Is(err, serr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serr.ErrInvalidInput),
		errors.Is(err, serr.ErrBadJSON),
		errors.Is(err, serr.ErrDecode):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, err error) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Error: err.Error(),
	})
}

// WriteJSON отдаёт v со статусом status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// fail пишет ошибку сервиса. Детали внутренних ошибок наружу не отдаются.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		h.Log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.Error(err),
		)
		WriteError(w, status, serr.ErrInternal)
		return
	}
	WriteError(w, status, err)
}

// decode читает JSON-тело запроса с ограничением размера.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	limit := h.MaxBodyBytes
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return false
	}
	return true
}

// param возвращает раскодированный параметр пути.
// chi берёт значения из RawPath, если он задан, и тогда они экранированы.
func param(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v
	}
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

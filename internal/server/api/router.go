package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/IvanChernomyrdin/fastfill/internal/server/middleware"
)

// NewRouter создаёт роутер API.
//
// Все маршруты, кроме /health, требуют access-токен.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))

	r.Get("/health", h.Health)

	// защищённые пути
	r.Group(func(r chi.Router) {
		if h.Verifier != nil {
			r.Use(h.Verifier.AuthMiddleware())
		}

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.ListCategories)
			r.Post("/", h.CreateCategory)
			r.Put("/", h.ReorderCategories)

			r.Route("/{category}", func(r chi.Router) {
				r.Put("/", h.RenameCategory)
				r.Delete("/", h.DeleteCategory)

				r.Route("/entries", func(r chi.Router) {
					r.Get("/", h.ListEntries)
					r.Post("/", h.CreateEntry)
					r.Put("/", h.ReorderEntries)

					r.Put("/{title}", h.UpdateEntry)
					r.Delete("/{title}", h.DeleteEntry)
					r.Post("/{title}/read", h.ReadEntry)
				})
			})
		})
	})

	return r
}

// Health отвечает 200, пока сервер жив.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

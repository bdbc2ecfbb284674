package tests

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/fastfill/internal/server/middleware"
	"github.com/IvanChernomyrdin/fastfill/internal/shared/logger"
)

// Статус по умолчанию и размер
func TestResponseWriter_Write_DefaultStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &middleware.ResponseWriter{ResponseWriter: rr}

	body := []byte("hello")
	n, err := w.Write(body)

	require.NoError(t, err)
	require.Equal(t, len(body), n)
	require.Equal(t, http.StatusOK, w.Status)
	require.Equal(t, len(body), w.Size)
}

// вспомогательная функция
func testHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

// проверка корректного прохода статуса и тела через мидлу
func TestLoggerMiddleware(t *testing.T) {
	handler := middleware.LoggerMiddleware(nil)(testHandler(http.StatusTeapot, "tea"))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusTeapot, rr.Code)
	require.Equal(t, "tea", rr.Body.String())
}

// запрос попадает в лог-файл
func TestLoggerMiddleware_WritesToLog(t *testing.T) {
	file := filepath.Join(t.TempDir(), logger.FileName)
	log := logger.New(logger.Options{File: file, Level: "info"})

	handler := middleware.LoggerMiddleware(log)(testHandler(http.StatusCreated, "ok"))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/categories", nil))
	require.NoError(t, log.Sync())

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(b), "HTTP request")
	require.Contains(t, string(b), "/categories")
	require.Contains(t, string(b), "201")
}

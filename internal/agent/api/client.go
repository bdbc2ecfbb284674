// Package api содержит HTTP-клиент локального API FastFill.
//
// Клиент нужен интеграциям (скрипты, расширения) и команде `fastfill status`.
//
// Особенности:
//   - baseURL нормализуется (обрезаются завершающие "/");
//   - заголовок Accept: application/json добавляется всегда;
//   - Content-Type: application/json только при наличии тела;
//   - 204 No Content и пустое тело считаются успехом;
//   - ответ не 2xx превращается в *Error со статусом и текстом ошибки.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/IvanChernomyrdin/fastfill/internal/shared/models"
)

// Error - ответ сервера со статусом не 2xx.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client реализует HTTP-клиент локального API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient создаёт клиент для baseURL (например, "http://127.0.0.1:8765").
// token передаётся в заголовке Authorization: Bearer <token>; пустой не передаётся.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// readAPIError читает тело ответа с ошибкой.
// Если тело не JSON вида {"error": "..."}, используется текст тела или res.Status.
func readAPIError(res *http.Response) error {
	raw, _ := io.ReadAll(res.Body)

	var body models.ErrorResponse
	msg := strings.TrimSpace(string(raw))
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		msg = body.Error
	}
	if msg == "" {
		msg = res.Status
	}
	return &Error{Status: res.StatusCode, Message: msg}
}

// decodeJSONOrOK декодирует JSON из r в resp. Пустое тело не ошибка.
func decodeJSONOrOK(r io.Reader, resp any) error {
	if resp == nil {
		return nil
	}
	err := json.NewDecoder(r).Decode(resp)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// do выполняет запрос method к path.
//
// req сериализуется в JSON, если не nil. resp декодируется, если не nil
// и ответ не 204.
func (c *Client) do(method, path string, req any, resp any) error {
	var body io.Reader
	if req != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(req); err != nil {
			return err
		}
		body = &buf
	}

	r, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	r.Header.Set("Accept", "application/json")
	if req != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		r.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(r)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return readAPIError(res)
	}

	// 204/пустое тело - ок
	if res.StatusCode == http.StatusNoContent {
		return nil
	}

	return decodeJSONOrOK(res.Body, resp)
}

// Health проверяет, что сервер отвечает.
//
//	GET /health
func (c *Client) Health() error {
	return c.do(http.MethodGet, "/health", nil, nil)
}

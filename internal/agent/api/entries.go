package api

import (
	"net/http"
	"net/url"

	"github.com/IvanChernomyrdin/fastfill/internal/shared/models"
)

func entriesPath(category string) string {
	return categoryPath(category) + "/entries"
}

func entryPath(category, title string) string {
	return entriesPath(category) + "/" + url.PathEscape(title)
}

// Entries возвращает записи категории.
//
//	GET /categories/{name}/entries
func (c *Client) Entries(category string) ([]models.Entry, error) {
	var resp models.EntriesResponse
	err := c.do(http.MethodGet, entriesPath(category), nil, &resp)
	return resp.Entries, err
}

// AddEntry добавляет запись в конец категории.
//
//	POST /categories/{name}/entries
func (c *Client) AddEntry(category string, req models.CreateEntryRequest) error {
	return c.do(http.MethodPost, entriesPath(category), req, nil)
}

// ReadEntry возвращает открытый текст записи.
// password нужен только для зашифрованной записи.
//
//	POST /categories/{name}/entries/{title}/read
func (c *Client) ReadEntry(category, title, password string) (string, error) {
	var resp models.ReadEntryResponse
	err := c.do(http.MethodPost, entryPath(category, title)+"/read",
		models.ReadEntryRequest{Password: password}, &resp)
	return resp.Content, err
}

// UpdateEntry меняет содержимое и/или заголовок записи.
//
//	PUT /categories/{name}/entries/{title}
func (c *Client) UpdateEntry(category, title string, req models.UpdateEntryRequest) error {
	return c.do(http.MethodPut, entryPath(category, title), req, nil)
}

// DeleteEntry удаляет запись.
//
//	DELETE /categories/{name}/entries/{title}
func (c *Client) DeleteEntry(category, title string) error {
	return c.do(http.MethodDelete, entryPath(category, title), nil, nil)
}

// ReorderEntries задаёт новый порядок записей категории.
//
//	PUT /categories/{name}/entries
func (c *Client) ReorderEntries(category string, order []string) error {
	return c.do(http.MethodPut, entriesPath(category), models.OrderRequest{Order: order}, nil)
}

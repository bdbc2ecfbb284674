package api

import (
	"net/http"
	"net/url"

	"github.com/IvanChernomyrdin/fastfill/internal/shared/models"
)

// categoryPath возвращает путь категории с экранированным именем.
func categoryPath(name string) string {
	return "/categories/" + url.PathEscape(name)
}

// Categories возвращает категории по порядку.
//
//	GET /categories
func (c *Client) Categories() ([]string, error) {
	var resp models.CategoriesResponse
	err := c.do(http.MethodGet, "/categories", nil, &resp)
	return resp.Categories, err
}

// AddCategory добавляет категорию в конец списка.
//
//	POST /categories
func (c *Client) AddCategory(name string) error {
	return c.do(http.MethodPost, "/categories", models.CategoryRequest{Name: name}, nil)
}

// RenameCategory переименовывает категорию.
//
//	PUT /categories/{name}
func (c *Client) RenameCategory(oldName, newName string) error {
	return c.do(http.MethodPut, categoryPath(oldName), models.CategoryRequest{Name: newName}, nil)
}

// DeleteCategory удаляет категорию вместе с записями.
//
//	DELETE /categories/{name}
func (c *Client) DeleteCategory(name string) error {
	return c.do(http.MethodDelete, categoryPath(name), nil, nil)
}

// ReorderCategories задаёт новый порядок всех категорий.
//
//	PUT /categories
func (c *Client) ReorderCategories(order []string) error {
	return c.do(http.MethodPut, "/categories", models.OrderRequest{Order: order}, nil)
}

// Package models содержит модели запросов и ответов локального HTTP API.
//
// Модели общие для сервера (internal/server/api) и клиента (internal/agent/api).
package models

// Entry - запись в списке категории. Содержимое в список не попадает.
type Entry struct {
	Position  int    `json:"position"`
	Title     string `json:"title"`
	Encrypted bool   `json:"encrypted"`
}

// ErrorResponse - тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CategoriesResponse - категории в порядке хранения.
//
//	GET /categories
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// CategoryRequest - создание и переименование категории.
//
//	POST /categories
//	PUT  /categories/{name}
type CategoryRequest struct {
	Name string `json:"name"`
}

// OrderRequest - полная перестановка имён.
//
//	PUT /categories
//	PUT /categories/{name}/entries
type OrderRequest struct {
	Order []string `json:"order"`
}

// EntriesResponse - записи категории по позициям.
//
//	GET /categories/{name}/entries
type EntriesResponse struct {
	Entries []Entry `json:"entries"`
}

// CreateEntryRequest - новая запись.
// Password нужен только при Encrypt и нигде не сохраняется.
//
//	POST /categories/{name}/entries
type CreateEntryRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Encrypt  bool   `json:"encrypt"`
	Password string `json:"password,omitempty"`
}

// ReadEntryRequest - пароль для зашифрованной записи.
//
//	POST /categories/{name}/entries/{title}/read
type ReadEntryRequest struct {
	Password string `json:"password,omitempty"`
}

// ReadEntryResponse - открытый текст записи.
type ReadEntryResponse struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateEntryRequest - новое содержимое и/или новый заголовок.
// Поля-указатели: передаются только изменяемые значения.
//
//	PUT /categories/{name}/entries/{title}
type UpdateEntryRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Password string  `json:"password,omitempty"`
}

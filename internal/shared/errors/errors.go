// Package errors содержит общие доменные ошибки приложения FastFill.
//
// Ошибки используются слоями crypto, store и service, а затем
// отображаются в сообщения CLI и HTTP-статусы в api слое.
// Проверка выполняется через errors.Is, контекст добавляется через fmt.Errorf("%w").
package errors

import (
	"errors"
	"fmt"
)

var (
	// Входные данные невалидны (пустое имя, запрещённый суффикс и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("unauthorized")
)

// категории и записи
var (
	ErrDuplicateTitle    = errors.New("title already exists in this category")
	ErrDuplicateCategory = errors.New("category already exists")
	ErrLastCategory      = errors.New("the last remaining category cannot be deleted")

	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
	ErrEntryNotFound    = fmt.Errorf("entry %w", ErrNotFound)

	// порядок должен быть полной перестановкой существующих имён
	ErrInvalidOrder = fmt.Errorf("%w: order must list every existing name exactly once", ErrInvalidInput)
)

// шифрование и хранилище
var (
	ErrWrongPassword    = errors.New("wrong password for this content")
	ErrPasswordRequired = errors.New("password required for encrypted content")
	ErrDecode           = errors.New("malformed encrypted content")
	ErrStorageIO        = errors.New("storage file is not accessible")
)

// Package store описывает модель хранилища FastFill (категории и записи)
// и её проекцию на INI-файл.
//
// Пакет не содержит бизнес-правил: уникальность, нумерацию и пароли
// проверяет слой service. Здесь только типы, поиск и копирование.
package store

import "strings"

const (
	// EncryptedSuffix - маркер зашифрованной записи в заголовке на диске.
	EncryptedSuffix = "_encrypted"
	// LockGlyph - отображаемая пометка зашифрованной записи.
	LockGlyph = " 🔒"
)

// Content - содержимое записи: Plain или Encrypted.
type Content interface {
	isContent()
}

// Plain - открытый текст, хранится как есть.
type Plain struct {
	Text string
}

// Encrypted - конверт base64(salt || iv || ciphertext).
type Encrypted struct {
	Envelope string
}

func (Plain) isContent()     {}
func (Encrypted) isContent() {}

// Entry - одна запись категории. Title хранится без пометок.
type Entry struct {
	Title   string
	Content Content
}

// IsEncrypted сообщает, зашифрована ли запись.
func (e Entry) IsEncrypted() bool {
	_, ok := e.Content.(Encrypted)
	return ok
}

// DisplayTitle возвращает заголовок для показа пользователю.
func (e Entry) DisplayTitle() string {
	if e.IsEncrypted() {
		return e.Title + LockGlyph
	}
	return e.Title
}

// Category - именованная упорядоченная группа записей.
// Позиция записи равна индексу + 1.
type Category struct {
	Name    string
	Entries []Entry
}

// IndexOf ищет запись по заголовку без учёта пометок. -1, если нет.
func (c *Category) IndexOf(title string) int {
	key := StripDecoration(title)
	for i, e := range c.Entries {
		if StripDecoration(e.Title) == key {
			return i
		}
	}
	return -1
}

// Store - всё хранилище: упорядоченный список категорий.
type Store struct {
	Categories []Category
}

// IndexOf ищет категорию по имени. -1, если нет.
func (s *Store) IndexOf(name string) int {
	for i, c := range s.Categories {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Category возвращает указатель на категорию внутри Store или nil.
func (s *Store) Category(name string) *Category {
	if i := s.IndexOf(name); i >= 0 {
		return &s.Categories[i]
	}
	return nil
}

// Names возвращает имена категорий в порядке хранения.
func (s *Store) Names() []string {
	out := make([]string, 0, len(s.Categories))
	for _, c := range s.Categories {
		out = append(out, c.Name)
	}
	return out
}

// Clone делает глубокую копию: изменения копии не видны оригиналу.
func (s *Store) Clone() *Store {
	out := &Store{Categories: make([]Category, len(s.Categories))}
	for i, c := range s.Categories {
		out.Categories[i] = Category{
			Name:    c.Name,
			Entries: append([]Entry(nil), c.Entries...),
		}
	}
	return out
}

// StripDecoration убирает пометку шифрования (значок замка и суффикс).
func StripDecoration(title string) string {
	t := strings.TrimSpace(title)
	t = strings.TrimSuffix(t, LockGlyph)
	t = strings.TrimSuffix(t, strings.TrimSpace(LockGlyph))
	t = strings.TrimSpace(t)
	return strings.TrimSuffix(t, EncryptedSuffix)
}

// HasDecoration сообщает, несёт ли заголовок одну из пометок.
func HasDecoration(title string) bool {
	t := strings.TrimSpace(title)
	return strings.HasSuffix(t, strings.TrimSpace(LockGlyph)) || strings.HasSuffix(t, EncryptedSuffix)
}

// DefaultStore возвращает хранилище, которым заполняется новый или
// повреждённый файл. Поддерживаются языки "en" и "de".
func DefaultStore(language string) *Store {
	name, title, text := "Category 1", "Example Text", "example.mail@mail.com"
	if strings.EqualFold(language, "de") {
		name, title, text = "Kategorie 1", "Beispiel Text", "beispiel.mail@mail.de"
	}
	return &Store{Categories: []Category{{
		Name:    name,
		Entries: []Entry{{Title: title, Content: Plain{Text: text}}},
	}}}
}

// Package service - слой доступа к хранилищу FastFill.
//
// Каждая операция выполняется по схеме: загрузить файл целиком,
// изменить копию, проверить инварианты, атомарно записать файл целиком.
// Если инвариант нарушен, Save не вызывается и файл остаётся прежним.
//
// Категория передаётся в каждый вызов явно: «текущей категории»
// как глобального состояния нет.
package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/fastfill/internal/agent/crypto"
	"github.com/IvanChernomyrdin/fastfill/internal/agent/store"
	serr "github.com/IvanChernomyrdin/fastfill/internal/shared/errors"
	"github.com/IvanChernomyrdin/fastfill/internal/shared/logger"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_storage.go -package=mocks

// Storage - то, что сервис ожидает от файлового хранилища.
type Storage interface {
	Load() (*store.Store, error)
	Save(*store.Store) error
	// Quarantine убирает повреждённый файл в сторону и возвращает новый путь.
	Quarantine() (string, error)
}

// Options - параметры сервиса из настроек.
type Options struct {
	// Language определяет содержимое хранилища по умолчанию (en|de).
	Language string
	// KDF - параметры получения ключа для всего хранилища.
	KDF crypto.KDFParams
}

// NewEntry - данные новой записи.
type NewEntry struct {
	Title   string
	Content string
	Encrypt bool
	// Password обязателен, если Encrypt == true. Нигде не сохраняется.
	Password string
}

// EntryView - запись в том виде, в каком её показывают пользователю.
type EntryView struct {
	Position  int    `json:"position"`
	Title     string `json:"title"`
	Encrypted bool   `json:"encrypted"`
}

// Service реализует операции над категориями и записями.
// Вызовы сериализуются мьютексом: в каждый момент пишет один вызов.
type Service struct {
	mu      sync.Mutex
	storage Storage
	opts    Options
	log     *logger.Logger
}

// New создаёт сервис. Пустой KDF.Algorithm означает параметры по умолчанию.
func New(storage Storage, opts Options, log *logger.Logger) *Service {
	if opts.KDF.Algorithm == "" {
		opts.KDF = crypto.DefaultKDFParams()
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{storage: storage, opts: opts, log: log}
}

// Open загружает хранилище при старте.
//
// Повреждённый файл переносится в <path>.broken-<unix>, вместо него
// записывается хранилище по умолчанию. Пустое хранилище тоже заполняется
// значениями по умолчанию, чтобы всегда существовала хотя бы одна категория.
func (s *Service) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.storage.Load()
	switch {
	case errors.Is(err, serr.ErrStorageIO):
		s.log.Error("store file is broken, starting from defaults", zap.Error(err))
		moved, qerr := s.storage.Quarantine()
		if qerr != nil {
			return qerr
		}
		if moved != "" {
			s.log.Warn("broken store moved aside", zap.String("path", moved))
		}
		return s.storage.Save(store.DefaultStore(s.opts.Language))
	case err != nil:
		return err
	}

	if len(st.Categories) == 0 {
		s.log.Info("store is empty, writing defaults")
		return s.storage.Save(store.DefaultStore(s.opts.Language))
	}
	return nil
}

// load читает хранилище. Нечитаемый файл трактуется как хранилище по умолчанию,
// broken сообщает об этом вызывающему.
func (s *Service) load() (st *store.Store, broken bool, err error) {
	st, err = s.storage.Load()
	if err != nil {
		if errors.Is(err, serr.ErrStorageIO) {
			s.log.Warn("store unreadable, using defaults", zap.Error(err))
			return store.DefaultStore(s.opts.Language), true, nil
		}
		return nil, false, err
	}
	if len(st.Categories) == 0 {
		return store.DefaultStore(s.opts.Language), false, nil
	}
	return st, false, nil
}

// view выполняет fn над загруженным хранилищем без записи.
func (s *Service) view(fn func(st *store.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, _, err := s.load()
	if err != nil {
		return err
	}
	return fn(st)
}

// mutate меняет копию хранилища и записывает её, только если fn вернул nil
// и результат переживает запись в файл без изменений.
// Нечитаемый файл перед записью переносится в сторону, а не затирается.
func (s *Service) mutate(fn func(st *store.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, broken, err := s.load()
	if err != nil {
		return err
	}
	next := st.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := store.Verify(next); err != nil {
		return fmt.Errorf("%w: %v", serr.ErrInvalidInput, err)
	}

	if broken {
		moved, err := s.storage.Quarantine()
		if err != nil {
			return err
		}
		if moved != "" {
			s.log.Warn("broken store moved aside", zap.String("path", moved))
		}
	}
	return s.storage.Save(next)
}

// noPassword сообщает, что пароль не введён: пустой или из одних пробелов.
// Сам пароль никогда не обрезается.
func noPassword(password string) bool {
	return strings.TrimSpace(password) == ""
}

func category(st *store.Store, name string) (*store.Category, error) {
	c := st.Category(strings.TrimSpace(name))
	if c == nil {
		return nil, fmt.Errorf("%w: %q", serr.ErrCategoryNotFound, name)
	}
	return c, nil
}

func entryIndex(c *store.Category, title string) (int, error) {
	i := c.IndexOf(title)
	if i < 0 {
		return -1, fmt.Errorf("%w: %q", serr.ErrEntryNotFound, store.StripDecoration(title))
	}
	return i, nil
}

// cleanTitle проверяет новый заголовок записи.
func cleanTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	switch {
	case t == "":
		return "", fmt.Errorf("%w: empty title", serr.ErrInvalidInput)
	case strings.ContainsAny(t, "\r\n"):
		return "", fmt.Errorf("%w: title must be a single line", serr.ErrInvalidInput)
	case store.HasDecoration(t):
		return "", fmt.Errorf("%w: title must not end with %q or the lock mark", serr.ErrInvalidInput, store.EncryptedSuffix)
	}
	return t, nil
}

// cleanCategory проверяет новое имя категории: оно станет именем секции INI.
func cleanCategory(name string) (string, error) {
	n := strings.TrimSpace(name)
	switch {
	case n == "":
		return "", fmt.Errorf("%w: empty category name", serr.ErrInvalidInput)
	case strings.ContainsAny(n, "\r\n[]"):
		return "", fmt.Errorf("%w: category name must be a single line without brackets", serr.ErrInvalidInput)
	case n == store.ReservedSection:
		return "", fmt.Errorf("%w: %q is reserved", serr.ErrInvalidInput, n)
	}
	return n, nil
}

// permutation проверяет, что order перечисляет все ключи ровно по одному разу,
// и возвращает индексы в исходном срезе в новом порядке.
func permutation(keys []string, order []string, norm func(string) string) ([]int, error) {
	if len(order) != len(keys) {
		return nil, serr.ErrInvalidOrder
	}
	pos := make(map[string]int, len(keys))
	for i, k := range keys {
		pos[k] = i
	}
	seen := make(map[int]bool, len(order))
	out := make([]int, 0, len(order))
	for _, o := range order {
		i, ok := pos[norm(o)]
		if !ok || seen[i] {
			return nil, serr.ErrInvalidOrder
		}
		seen[i] = true
		out = append(out, i)
	}
	return out, nil
}

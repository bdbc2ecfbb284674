// Package memory - хранилище FastFill в памяти.
//
// Реализует тот же контракт, что и файловое хранилище (Load/Save/Quarantine),
// но без диска: для тестов и временных сессий (`fastfill --store :memory:`).
package memory

import (
	"fmt"
	"sync"

	"github.com/IvanChernomyrdin/fastfill/internal/agent/store"
	serr "github.com/IvanChernomyrdin/fastfill/internal/shared/errors"
)

// Path - значение --store, при котором хранилище живёт только в памяти процесса.
const Path = ":memory:"

// Storage - потокобезопасное хранилище в памяти.
//
// Load и Save работают с копиями: изменения вызывающего кода
// не попадают в хранилище без Save.
type Storage struct {
	mu     sync.RWMutex
	st     *store.Store
	broken bool
	saves  int
}

// NewStorage создаёт хранилище. initial может быть nil (пустое хранилище).
func NewStorage(initial *store.Store) *Storage {
	s := &Storage{st: &store.Store{}}
	if initial != nil {
		s.st = initial.Clone()
	}
	return s
}

// Load возвращает копию текущего состояния.
// После Corrupt возвращает ErrStorageIO, пока не вызван Quarantine или Save.
func (s *Storage) Load() (*store.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.broken {
		return nil, fmt.Errorf("%w: memory store marked broken", serr.ErrStorageIO)
	}
	return s.st.Clone(), nil
}

// Save заменяет состояние копией st.
func (s *Storage) Save(st *store.Store) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.st = st.Clone()
	s.broken = false
	s.saves++
	return nil
}

// Quarantine сбрасывает повреждённое состояние. Переносить некуда,
// поэтому путь всегда пустой.
func (s *Storage) Quarantine() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.st = &store.Store{}
	s.broken = false
	return "", nil
}

// Corrupt помечает хранилище повреждённым.
func (s *Storage) Corrupt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.broken = true
}

// Saves возвращает число успешных Save.
func (s *Storage) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// Package clipboard копирует значения в системный буфер обмена
// и очищает его по таймеру.
package clipboard

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/fastfill/internal/shared/logger"
)

//go:generate mockgen -source=clipboard.go -destination=mocks/mock_clipboard.go -package=mocks

// ErrUnsupported - в системе нет доступного буфера обмена
// (например, Linux без xclip/xsel/wl-clipboard).
var ErrUnsupported = errors.New("clipboard is not supported on this system")

// Clipboard - системный буфер обмена.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// System - буфер обмена ОС через github.com/atotto/clipboard.
type System struct{}

// ReadAll читает текст из буфера обмена.
func (System) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	return clipboard.ReadAll()
}

// WriteAll записывает текст в буфер обмена.
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Manager держит не больше одного таймера очистки.
// Новое копирование отменяет предыдущий таймер.
type Manager struct {
	cb  Clipboard
	log *logger.Logger

	mu    sync.Mutex
	gen   uint64
	timer *time.Timer
	done  chan struct{}
}

// NewManager создаёт Manager поверх cb.
func NewManager(cb Clipboard, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.NewNop()
	}
	return &Manager{cb: cb, log: log}
}

// Copy кладёт text в буфер обмена и, если after > 0, ставит таймер очистки.
//
// Возвращаемый канал закрывается, когда таймер сработал, был заменён
// следующим Copy или отменён через Stop. При after <= 0 канал уже закрыт.
// Очистка стирает буфер, только если в нём всё ещё лежит text.
func (m *Manager) Copy(text string, after time.Duration) (<-chan struct{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.cb.WriteAll(text); err != nil {
		return nil, fmt.Errorf("clipboard write: %w", err)
	}
	m.cancelLocked()

	done := make(chan struct{})
	if after <= 0 {
		close(done)
		return done, nil
	}

	gen := m.gen
	m.done = done
	m.timer = time.AfterFunc(after, func() { m.clear(gen, text) })
	return done, nil
}

// Stop отменяет ожидающую очистку, не трогая буфер.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelLocked()
}

func (m *Manager) clear(gen uint64, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// таймер уже заменён или отменён
	if gen != m.gen || m.done == nil {
		return
	}

	cur, err := m.cb.ReadAll()
	switch {
	case err != nil:
		m.log.Warn("clipboard read failed", zap.Error(err))
	case cur == text:
		if err := m.cb.WriteAll(""); err != nil {
			m.log.Warn("clipboard clear failed", zap.Error(err))
		} else {
			m.log.Debug("clipboard cleared")
		}
	}

	close(m.done)
	m.done = nil
	m.timer = nil
	m.gen++
}

func (m *Manager) cancelLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	if m.done != nil {
		close(m.done)
		m.done = nil
	}
	m.gen++
}

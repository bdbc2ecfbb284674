package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/fastfill/internal/agent/crypto"
	"github.com/IvanChernomyrdin/fastfill/internal/agent/store"
	serr "github.com/IvanChernomyrdin/fastfill/internal/shared/errors"
)

// AddEntry добавляет запись в конец категории (позиция count+1).
//
// Ошибки:
//   - ErrInvalidInput - пустой заголовок или заголовок с пометкой;
//   - ErrCategoryNotFound - категории нет;
//   - ErrDuplicateTitle - такой заголовок уже есть (зашифрованный или нет);
//   - ErrPasswordRequired - Encrypt без пароля или с паролем из одних пробелов;
//   - ErrInvalidInput - текст не сохранится в файл как есть (пробелы по краям
//     первой строки, начало с `"""` или обратной кавычки).
func (s *Service) AddEntry(categoryName string, in NewEntry) error {
	title, err := cleanTitle(in.Title)
	if err != nil {
		return err
	}
	if in.Encrypt && noPassword(in.Password) {
		return serr.ErrPasswordRequired
	}

	return s.mutate(func(st *store.Store) error {
		c, err := category(st, categoryName)
		if err != nil {
			return err
		}
		if c.IndexOf(title) >= 0 {
			return fmt.Errorf("%w: %q", serr.ErrDuplicateTitle, title)
		}

		var content store.Content = store.Plain{Text: in.Content}
		if in.Encrypt {
			env, err := crypto.EncryptContent(in.Password, in.Content, s.opts.KDF)
			if err != nil {
				return err
			}
			content = store.Encrypted{Envelope: env}
		}

		c.Entries = append(c.Entries, store.Entry{Title: title, Content: content})
		s.log.Info("entry added",
			zap.String("category", c.Name),
			zap.String("title", title),
			zap.Bool("encrypted", in.Encrypt),
			zap.Int("position", len(c.Entries)),
		)
		return nil
	})
}

// ReadEntry возвращает открытый текст записи.
// Для зашифрованной записи нужен пароль; неверный пароль - ErrWrongPassword.
func (s *Service) ReadEntry(categoryName, title, password string) (string, error) {
	var out string
	err := s.view(func(st *store.Store) error {
		c, err := category(st, categoryName)
		if err != nil {
			return err
		}
		i, err := entryIndex(c, title)
		if err != nil {
			return err
		}

		switch content := c.Entries[i].Content.(type) {
		case store.Encrypted:
			if noPassword(password) {
				return serr.ErrPasswordRequired
			}
			plain, err := crypto.DecryptContent(password, content.Envelope, s.opts.KDF)
			if err != nil {
				// KDF в конверте не записан: после смены crypto.kdf
				// все старые записи читаются как «неверный пароль»
				s.log.Warn("decrypt failed",
					zap.String("category", c.Name),
					zap.String("title", c.Entries[i].Title),
					zap.String("kdf", s.opts.KDF.Algorithm),
					zap.Error(err),
				)
				return err
			}
			out = plain
		case store.Plain:
			out = content.Text
		}
		return nil
	})
	return out, err
}

// RenameEntry меняет заголовок записи, сохраняя её содержимое, позицию и шифрование.
func (s *Service) RenameEntry(categoryName, oldTitle, newTitle string) error {
	return s.UpdateEntry(categoryName, oldTitle, &newTitle, nil, "")
}

// DeleteEntry удаляет запись. Остальные записи сдвигаются,
// позиции снова образуют 1..N без пропусков.
func (s *Service) DeleteEntry(categoryName, title string) error {
	return s.mutate(func(st *store.Store) error {
		c, err := category(st, categoryName)
		if err != nil {
			return err
		}
		i, err := entryIndex(c, title)
		if err != nil {
			return err
		}

		s.log.Info("entry deleted", zap.String("category", c.Name), zap.String("title", c.Entries[i].Title))
		c.Entries = append(c.Entries[:i], c.Entries[i+1:]...)
		return nil
	})
}

// ReorderEntries расставляет записи в порядке order.
// order - полная перестановка заголовков категории (пометки допускаются).
func (s *Service) ReorderEntries(categoryName string, order []string) error {
	return s.mutate(func(st *store.Store) error {
		c, err := category(st, categoryName)
		if err != nil {
			return err
		}

		keys := make([]string, len(c.Entries))
		for i, e := range c.Entries {
			keys[i] = store.StripDecoration(e.Title)
		}
		idx, err := permutation(keys, order, store.StripDecoration)
		if err != nil {
			return err
		}

		next := make([]store.Entry, 0, len(idx))
		for _, i := range idx {
			next = append(next, c.Entries[i])
		}
		c.Entries = next
		s.log.Info("entries reordered", zap.String("category", c.Name))
		return nil
	})
}

// UpdateContent заменяет содержимое записи.
//
// Открытая запись перезаписывается как есть. Зашифрованная остаётся
// зашифрованной: содержимое шифруется заново переданным паролем со свежими
// salt и IV.
func (s *Service) UpdateContent(categoryName, title, content, password string) error {
	return s.UpdateEntry(categoryName, title, nil, &content, password)
}

// UpdateEntry меняет заголовок и/или содержимое записи за одну запись файла.
// nil означает «не менять». Если не проходит любая из частей,
// хранилище остаётся прежним.
func (s *Service) UpdateEntry(categoryName, title string, newTitle, content *string, password string) error {
	if newTitle == nil && content == nil {
		return fmt.Errorf("%w: nothing to update", serr.ErrInvalidInput)
	}
	var renamed string
	if newTitle != nil {
		t, err := cleanTitle(*newTitle)
		if err != nil {
			return err
		}
		renamed = t
	}

	return s.mutate(func(st *store.Store) error {
		c, err := category(st, categoryName)
		if err != nil {
			return err
		}
		i, err := entryIndex(c, title)
		if err != nil {
			return err
		}

		if newTitle != nil {
			if j := c.IndexOf(renamed); j >= 0 && j != i {
				return fmt.Errorf("%w: %q", serr.ErrDuplicateTitle, renamed)
			}
		}
		if content != nil {
			if err := s.replaceContent(c, i, *content, password); err != nil {
				return err
			}
		}
		if newTitle != nil {
			s.log.Info("entry renamed",
				zap.String("category", c.Name),
				zap.String("from", c.Entries[i].Title),
				zap.String("to", renamed),
			)
			c.Entries[i].Title = renamed
		}
		return nil
	})
}

func (s *Service) replaceContent(c *store.Category, i int, content, password string) error {
	e := &c.Entries[i]
	switch e.Content.(type) {
	case store.Encrypted:
		if noPassword(password) {
			return serr.ErrPasswordRequired
		}
		env, err := crypto.EncryptContent(password, content, s.opts.KDF)
		if err != nil {
			return err
		}
		e.Content = store.Encrypted{Envelope: env}
	default:
		e.Content = store.Plain{Text: content}
	}
	s.log.Info("entry content updated",
		zap.String("category", c.Name),
		zap.String("title", e.Title),
		zap.Bool("encrypted", e.IsEncrypted()),
	)
	return nil
}

// Entries возвращает записи категории в порядке позиций.
func (s *Service) Entries(categoryName string) ([]EntryView, error) {
	var out []EntryView
	err := s.view(func(st *store.Store) error {
		c, err := category(st, categoryName)
		if err != nil {
			return err
		}
		out = make([]EntryView, 0, len(c.Entries))
		for i, e := range c.Entries {
			out = append(out, EntryView{Position: i + 1, Title: e.Title, Encrypted: e.IsEncrypted()})
		}
		return nil
	})
	return out, err
}

package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/fastfill/internal/agent/store"
	serr "github.com/IvanChernomyrdin/fastfill/internal/shared/errors"
)

// AddCategory добавляет пустую категорию в конец списка.
func (s *Service) AddCategory(name string) error {
	n, err := cleanCategory(name)
	if err != nil {
		return err
	}

	return s.mutate(func(st *store.Store) error {
		if st.IndexOf(n) >= 0 {
			return fmt.Errorf("%w: %q", serr.ErrDuplicateCategory, n)
		}
		st.Categories = append(st.Categories, store.Category{Name: n})
		s.log.Info("category added", zap.String("category", n))
		return nil
	})
}

// RenameCategory переименовывает категорию на месте, записи не меняются.
func (s *Service) RenameCategory(oldName, newName string) error {
	n, err := cleanCategory(newName)
	if err != nil {
		return err
	}

	return s.mutate(func(st *store.Store) error {
		c, err := category(st, oldName)
		if err != nil {
			return err
		}
		if c.Name == n {
			return nil
		}
		if st.IndexOf(n) >= 0 {
			return fmt.Errorf("%w: %q", serr.ErrDuplicateCategory, n)
		}

		s.log.Info("category renamed", zap.String("from", c.Name), zap.String("to", n))
		c.Name = n
		return nil
	})
}

// DeleteCategory удаляет категорию вместе с записями.
// Последнюю категорию удалить нельзя: ErrLastCategory.
func (s *Service) DeleteCategory(name string) error {
	return s.mutate(func(st *store.Store) error {
		c, err := category(st, name)
		if err != nil {
			return err
		}
		if len(st.Categories) == 1 {
			return serr.ErrLastCategory
		}

		i := st.IndexOf(c.Name)
		s.log.Info("category deleted", zap.String("category", st.Categories[i].Name))
		st.Categories = append(st.Categories[:i], st.Categories[i+1:]...)
		return nil
	})
}

// ReorderCategories расставляет категории в порядке order (полная перестановка).
func (s *Service) ReorderCategories(order []string) error {
	return s.mutate(func(st *store.Store) error {
		idx, err := permutation(st.Names(), order, strings.TrimSpace)
		if err != nil {
			return err
		}

		next := make([]store.Category, 0, len(idx))
		for _, i := range idx {
			next = append(next, st.Categories[i])
		}
		st.Categories = next
		s.log.Info("categories reordered")
		return nil
	})
}

// Categories возвращает имена категорий в порядке хранения.
func (s *Service) Categories() ([]string, error) {
	var out []string
	err := s.view(func(st *store.Store) error {
		out = st.Names()
		return nil
	})
	return out, err
}

// DefaultCategory возвращает первую категорию: с неё CLI начинает,
// если категория не указана явно.
func (s *Service) DefaultCategory() (string, error) {
	var out string
	err := s.view(func(st *store.Store) error {
		out = st.Categories[0].Name
		return nil
	})
	return out, err
}

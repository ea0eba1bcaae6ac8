// internal/service/category_service.go
package service

import (
	"errors"
	"fmt"
	"log/slog"

	"moneta/internal/domain"
	"moneta/internal/repository"
	"moneta/internal/util"
)

// CategoryService defines the category bookkeeping operations.
type CategoryService interface {
	// Insert appends a new category. Names are unique with exact,
	// case-sensitive matching; a duplicate fails with DuplicateCategoryError.
	Insert(name string, description *string, kind *domain.CategoryKind) (*domain.Category, error)
	// GetByID returns the category, or nil when absent.
	GetByID(id string) (*domain.Category, error)
	// GetAll returns every category in storage order.
	GetAll() ([]domain.Category, error)
	// UpdateName renames the category. Fails with ErrNotFound when absent;
	// the new name is not re-checked for uniqueness, matching insert-time-only
	// enforcement.
	UpdateName(id, newName string) error
	// UpdateDescription replaces the description. An empty string is a valid
	// description, distinct from absent.
	UpdateDescription(id, newDescription string) error
	// Delete removes the category by rewriting the collection without it.
	Delete(id string) error
}

type categoryService struct {
	repo repository.CategoryRepository
	log  *slog.Logger
}

// NewCategoryService creates a new instance of CategoryService.
func NewCategoryService(repo repository.CategoryRepository, log *slog.Logger) CategoryService {
	return &categoryService{repo: repo, log: log}
}

func (s *categoryService) Insert(name string, description *string, kind *domain.CategoryKind) (*domain.Category, error) {
	category := domain.NewCategory(name, description, kind)
	// The uniqueness check and the append run under one store update, so a
	// concurrent in-process insert of the same name cannot slip between them.
	err := s.repo.Update(func(categories []domain.Category) ([]domain.Category, error) {
		for i := range categories {
			if categories[i].Name == name {
				return nil, &util.DuplicateCategoryError{Name: name}
			}
		}
		return append(categories, category), nil
	})
	if err != nil {
		if errors.Is(err, util.ErrDuplicateName) {
			return nil, err
		}
		return nil, fmt.Errorf("insert category %q: %w", name, err)
	}
	s.log.Info("category created", "id", category.ID, "name", category.Name)
	return &category, nil
}

func (s *categoryService) GetByID(id string) (*domain.Category, error) {
	categories, err := s.repo.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("get category %s: %w", id, err)
	}
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i], nil
		}
	}
	return nil, nil
}

func (s *categoryService) GetAll() ([]domain.Category, error) {
	return s.repo.ReadAll()
}

func (s *categoryService) UpdateName(id, newName string) error {
	return s.updateOne(id, func(c *domain.Category) {
		c.Name = newName
	})
}

func (s *categoryService) UpdateDescription(id, newDescription string) error {
	return s.updateOne(id, func(c *domain.Category) {
		c.Description = &newDescription
	})
}

func (s *categoryService) updateOne(id string, mutate func(*domain.Category)) error {
	err := s.repo.Update(func(categories []domain.Category) ([]domain.Category, error) {
		for i := range categories {
			if categories[i].ID == id {
				mutate(&categories[i])
				return categories, nil
			}
		}
		return nil, util.ErrNotFound
	})
	if err != nil && !errors.Is(err, util.ErrNotFound) {
		return fmt.Errorf("update category %s: %w", id, err)
	}
	return err
}

func (s *categoryService) Delete(id string) error {
	err := s.repo.Update(func(categories []domain.Category) ([]domain.Category, error) {
		kept := categories[:0]
		for _, c := range categories {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		return kept, nil
	})
	if err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	return nil
}

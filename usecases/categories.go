package usecases

import (
	"blog-server/entities"
	"blog-server/repositories"
	"blog-server/slug"
)

type CategoryUseCase struct {
	CategoryRepo repositories.CategoryRepository
}

func NewCategoryUseCase(categoryRepo repositories.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{CategoryRepo: categoryRepo}
}

// CreateCategory stores a new category. The slug is a pure function of the
// name; two names collapsing to one slug surface as a conflict, same as a
// duplicate name.
func (uc *CategoryUseCase) CreateCategory(name string) (*entities.Category, error) {
	if name == "" {
		return nil, validationErr("Please enter a category name")
	}

	s := slug.Make(name)
	if _, err := uc.CategoryRepo.GetBySlug(s); err == nil {
		return nil, ErrCategoryTaken
	}

	category := &entities.Category{
		Name: name,
		Slug: s,
	}
	if err := uc.CategoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetAllCategories returns every category, name order.
func (uc *CategoryUseCase) GetAllCategories() ([]entities.Category, error) {
	return uc.CategoryRepo.GetAll()
}

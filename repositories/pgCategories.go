package repositories

import (
	"blog-server/db"
	"blog-server/entities"
)

type categoryPgRepository struct {
	db db.Database
}

func NewCategoryPgRepository(database db.Database) CategoryRepository {
	return &categoryPgRepository{db: database}
}

func (r *categoryPgRepository) Create(category *entities.Category) error {
	return r.db.GetDB().Create(category).Error
}

func (r *categoryPgRepository) GetByID(id string) (*entities.Category, error) {
	var category entities.Category
	err := r.db.GetDB().Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryPgRepository) GetBySlug(slug string) (*entities.Category, error) {
	var category entities.Category
	err := r.db.GetDB().Where("slug = ?", slug).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryPgRepository) GetAll() ([]entities.Category, error) {
	var categories []entities.Category
	err := r.db.GetDB().Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryPgRepository) DeleteAll() error {
	return r.db.GetDB().Where("1 = 1").Delete(&entities.Category{}).Error
}

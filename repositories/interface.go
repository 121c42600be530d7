package repositories

import "blog-server/entities"

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
	GetAll() ([]entities.User, error)
	DeleteAll() error
}

type CategoryRepository interface {
	Create(category *entities.Category) error
	GetByID(id string) (*entities.Category, error)
	GetBySlug(slug string) (*entities.Category, error)
	GetAll() ([]entities.Category, error)
	DeleteAll() error
}

type PostRepository interface {
	Create(post *entities.Post) error
	GetByID(id string) (*entities.Post, error)
	GetBySlug(slug string) (*entities.Post, error)
	List(offset, limit int) ([]entities.Post, error)
	Count() (int64, error)
	Update(post *entities.Post) error
	Delete(id string) error
	DeleteAll() error
	AddViews(id string, views int64) error
}

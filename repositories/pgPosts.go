package repositories

import (
	"blog-server/db"
	"blog-server/entities"
	"time"

	"gorm.io/gorm"
)

type postPgRepository struct {
	db db.Database
}

func NewPostPgRepository(database db.Database) PostRepository {
	return &postPgRepository{db: database}
}

func (r *postPgRepository) Create(post *entities.Post) error {
	return r.db.GetDB().Create(post).Error
}

func (r *postPgRepository) GetByID(id string) (*entities.Post, error) {
	var post entities.Post
	err := r.db.GetDB().Preload("Category").Preload("Author").Where("id = ?", id).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetBySlug returns the oldest post carrying the slug. Slugs are not unique,
// so on collision the post that claimed the slug first wins.
func (r *postPgRepository) GetBySlug(slug string) (*entities.Post, error) {
	var post entities.Post
	err := r.db.GetDB().Preload("Category").Preload("Author").
		Where("slug = ?", slug).Order("created_at ASC").First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postPgRepository) List(offset, limit int) ([]entities.Post, error) {
	var posts []entities.Post
	err := r.db.GetDB().Preload("Category").Preload("Author").
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *postPgRepository) Count() (int64, error) {
	var total int64
	err := r.db.GetDB().Model(&entities.Post{}).Count(&total).Error
	return total, err
}

func (r *postPgRepository) Update(post *entities.Post) error {
	post.UpdatedAt = time.Now().Format(time.RFC3339)
	return r.db.GetDB().Save(post).Error
}

func (r *postPgRepository) Delete(id string) error {
	return r.db.GetDB().Where("id = ?", id).Delete(&entities.Post{}).Error
}

func (r *postPgRepository) DeleteAll() error {
	return r.db.GetDB().Where("1 = 1").Delete(&entities.Post{}).Error
}

func (r *postPgRepository) AddViews(id string, views int64) error {
	return r.db.GetDB().Model(&entities.Post{}).Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + ?", views)).Error
}

package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a content record. Slug is derived from Title and is indexed but not
// unique: two titles can collapse to the same slug, in which case slug lookup
// returns the older post. Deletes are hard deletes.
type Post struct {
	ID            string    `gorm:"type:text;primaryKey" json:"id"`
	Title         string    `gorm:"not null" json:"title"`
	Slug          string    `gorm:"index;not null" json:"slug"`
	Content       string    `gorm:"not null" json:"content"`
	CategoryID    string    `gorm:"index;not null" json:"category_id"`
	Category      *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	AuthorID      string    `gorm:"index;not null" json:"author_id"`
	Author        *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	FeaturedImage string    `json:"featured_image,omitempty"`
	ViewCount     int64     `json:"view_count"`
	CreatedAt     string    `json:"created_at"`
	UpdatedAt     string    `json:"updated_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now().Format(time.RFC3339)
	p.UpdatedAt = p.CreatedAt
	return
}

package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a taxonomy node. Slug is derived from Name by the category
// usecase whenever the name changes.
type Category struct {
	ID        string `gorm:"type:text;primaryKey" json:"id"`
	Name      string `gorm:"unique;not null" json:"name"`
	Slug      string `gorm:"unique;not null" json:"slug"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.CreatedAt = time.Now().Format(time.RFC3339)
	c.UpdatedAt = c.CreatedAt
	return
}

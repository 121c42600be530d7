package db

import "gorm.io/gorm"

// Database abstracts the gorm handle so repositories and services can share
// one connection pool without importing the connect logic.
type Database interface {
	GetDB() *gorm.DB
}

type GormDatabase struct {
	DB *gorm.DB
}

func (g *GormDatabase) GetDB() *gorm.DB { return g.DB }

package database

import (
	"github.com/openblogger/blog-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	userRepo *UserRepo
	postRepo *PostRepo
	tagRepo  *TagRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo: NewUserRepo(db),
		postRepo: NewPostRepo(db),
		tagRepo:  NewTagRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

// Migrate creates or updates the schema for every entity. Runs once at
// startup before the server accepts requests.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Post{}, &models.Tag{})
}

// active scopes a query to rows that have not been soft-deleted. Every
// default read path goes through this scope.
func active(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

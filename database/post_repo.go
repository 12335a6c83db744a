package database

import (
	"errors"

	"github.com/openblogger/blog-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *PostRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns a page of posts ordered by id ascending, with their
// active tags preloaded.
func (r *PostRepo) FindAll(skip, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	err := active(r.db).
		Preload("Tags", "is_deleted = ?", false).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// FindByID returns a post by its ID, or nil if absent or soft-deleted.
func (r *PostRepo) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	err := active(r.db).
		Preload("Tags", "is_deleted = ?", false).
		First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindOwnedByID returns the post only when it belongs to the given user.
// A post owned by someone else comes back nil, same as a missing one.
func (r *PostRepo) FindOwnedByID(id, userID uint) (*models.Post, error) {
	var post models.Post
	err := active(r.db).
		Preload("Tags", "is_deleted = ?", false).
		Where("id = ? AND user_id = ?", id, userID).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new post into the database, creating join rows for any
// tags already attached to it.
func (r *PostRepo) Add(post *models.Post) error {
	return r.db.Create(post).Error
}

// Update persists changes to the post's own columns. Tag associations are
// managed separately through ReplaceTags.
func (r *PostRepo) Update(post *models.Post) error {
	return r.db.Omit(clause.Associations).Save(post).Error
}

// ReplaceTags swaps the post's tag set for the given one. An empty slice
// clears every association.
func (r *PostRepo) ReplaceTags(post *models.Post, tags []models.Tag) error {
	if err := r.db.Model(post).Association("Tags").Replace(tags); err != nil {
		return err
	}
	post.Tags = tags
	return nil
}

// Delete soft-deletes the post and removes its join-table rows so no
// orphaned associations remain.
func (r *PostRepo) Delete(post *models.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(post).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Model(post).Update("is_deleted", true).Error
	})
}

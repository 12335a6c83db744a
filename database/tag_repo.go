package database

import (
	"errors"

	"github.com/openblogger/blog-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *TagRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns a page of tags ordered by id ascending.
func (r *TagRepo) FindAll(skip, limit int) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := active(r.db).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&tags).Error
	return tags, err
}

// FindByID returns a tag by its ID, or nil if absent or soft-deleted.
func (r *TagRepo) FindByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := active(r.db).First(&tag, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindByIDs resolves a set of tag ids to the tags that exist. Ids that do
// not resolve are silently dropped from the result.
func (r *TagRepo) FindByIDs(ids []uint) ([]models.Tag, error) {
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}
	var tags []models.Tag
	err := active(r.db).Where("id IN ?", ids).Order("id ASC").Find(&tags).Error
	return tags, err
}

// FindPosts returns the active posts associated with the tag, or nil when
// the tag itself does not exist.
func (r *TagRepo) FindPosts(id uint) ([]models.Post, error) {
	tag, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, nil
	}
	posts := []models.Post{}
	err = active(r.db).
		Joins("JOIN post_tag ON post_tag.post_id = posts.id").
		Where("post_tag.tag_id = ?", tag.ID).
		Order("posts.id ASC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Add inserts a new tag into the database
func (r *TagRepo) Add(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// Update persists changes to the tag's own columns.
func (r *TagRepo) Update(tag *models.Tag) error {
	return r.db.Omit(clause.Associations).Save(tag).Error
}

// Delete soft-deletes the tag and removes its join-table rows.
func (r *TagRepo) Delete(tag *models.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(tag).Association("Posts").Clear(); err != nil {
			return err
		}
		return tx.Model(tag).Update("is_deleted", true).Error
	})
}

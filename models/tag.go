package models

// Tag labels posts through the post_tag join table.
type Tag struct {
	ID   uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex"`

	Posts []Post `json:"posts,omitempty" gorm:"many2many:post_tag;constraint:OnDelete:CASCADE"`

	Timestamps
	SoftDelete
}

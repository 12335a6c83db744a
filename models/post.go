package models

// Post is a blog entry owned by the user that created it. UserID is nullable
// to match the earliest schema revision, where posts predate ownership.
type Post struct {
	ID      uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title   string `json:"title" db:"title" gorm:"type:text;not null;index"`
	Content string `json:"content" db:"content" gorm:"type:text;not null"`
	UserID  *uint  `json:"userId,omitempty" db:"user_id" gorm:"index"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Tags   []Tag `json:"tags,omitempty" gorm:"many2many:post_tag;constraint:OnDelete:CASCADE"`

	Timestamps
	SoftDelete
}

package models

// User represents a registered account. Password always holds the bcrypt
// hash, never the plaintext, and is kept out of JSON.
type User struct {
	ID       uint   `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Username string `json:"username" db:"username" gorm:"type:text;not null;uniqueIndex"`
	Email    string `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex"`
	Password string `json:"-" db:"password" gorm:"type:text;not null"`

	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:UserID;references:ID"`

	Timestamps
	SoftDelete
}

package models

import "time"

// Timestamps adds creation and modification times to an entity. GORM fills
// both on create and bumps UpdatedAt on every save.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}

// SoftDelete marks a row as logically removed. Rows with IsDeleted set are
// excluded from every default read query; see the repository scopes.
type SoftDelete struct {
	IsDeleted bool `json:"-" db:"is_deleted" gorm:"not null;default:false"`
}

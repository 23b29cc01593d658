package models

import "time"

type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null;size:200"`
	Password  string `gorm:"not null;size:129"` // bcrypt hash, never the plaintext
	Name      string `gorm:"size:120"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	ExternalProjects []ExternalProject `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

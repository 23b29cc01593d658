package models

import "time"

// ExternalProject carries a caller-supplied id that is only unique per owner:
// the composite primary key (id, user_id) lets two users register the same
// project id without colliding.
type ExternalProject struct {
	ID        string `gorm:"primaryKey;size:200"`
	UserID    uint   `gorm:"primaryKey;autoIncrement:false"`
	Name      string `gorm:"not null;size:120"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

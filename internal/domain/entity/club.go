package entity

import "time"

// DefaultClubImage is the asset path applied when a club is created or
// updated without an image of its own.
const DefaultClubImage = "/images/default-club-image.png"

type Club struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string `gorm:"not null"`
	Description string
	Linktree    string
	Image       string
}

package entity

import (
	"slices"
	"time"

	"github.com/lib/pq"
)

// PermissionAdmin gates every club mutation.
const PermissionAdmin = "ADMIN"

// User is owned by the external identity provider; this service only ever
// reads it to resolve a bearer secret into a permission set.
type User struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Name        string
	Email       string         `gorm:"uniqueIndex"`
	Image       string
	Permissions pq.StringArray `gorm:"type:text[]"`
	Secret      string         `gorm:"uniqueIndex" json:"-"`
	Password    string         `json:"-"`
}

func (u *User) IsAdmin() bool {
	return slices.Contains(u.Permissions, PermissionAdmin)
}

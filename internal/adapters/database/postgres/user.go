package postgres

import (
	"context"

	"github.com/campushub/club-directory/internal/domain/entity"
	"gorm.io/gorm"
)

// UserStorage reads the identity table owned by the external identity
// provider. The password column is projected out of every read; the secure
// repository additionally drops the secret.
type UserStorage struct {
	users  repository[entity.User]
	secure repository[entity.User]
}

func NewUserStorage(db *gorm.DB) *UserStorage {
	return &UserStorage{
		users:  newRepository[entity.User](db, "password"),
		secure: newRepository[entity.User](db, "password", "secret"),
	}
}

// GetByEmail is a function that gets a user from the database by email.
func (s *UserStorage) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.users.FindOne(ctx, map[string]interface{}{"email": email})
}

// GetBySecret resolves an opaque bearer token into an identity.
func (s *UserStorage) GetBySecret(ctx context.Context, secret string) (*entity.User, error) {
	return s.users.FindOne(ctx, map[string]interface{}{"secret": secret})
}

// GetAllSecure is a function that gets all users from the database without
// their secrets.
func (s *UserStorage) GetAllSecure(ctx context.Context) ([]entity.User, error) {
	return s.secure.FindMany(ctx, nil)
}

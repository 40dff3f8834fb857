package service

import (
	"context"

	"github.com/campushub/club-directory/internal/domain/entity"
)

type UserStorage interface {
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetBySecret(ctx context.Context, secret string) (*entity.User, error)
	GetAllSecure(ctx context.Context) ([]entity.User, error)
}

// UserService reads the identity store owned by the external identity
// provider; it never writes it. It doubles as the identity resolver for the
// club mutation gates.
type UserService struct {
	storage UserStorage
}

var _ IdentityStorage = (*UserService)(nil)

func NewUserService(storage UserStorage) *UserService {
	return &UserService{
		storage: storage,
	}
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.storage.GetByEmail(ctx, email)
}

func (s *UserService) GetBySecret(ctx context.Context, secret string) (*entity.User, error) {
	return s.storage.GetBySecret(ctx, secret)
}

func (s *UserService) GetAllSecure(ctx context.Context) ([]entity.User, error) {
	return s.storage.GetAllSecure(ctx)
}

package postgres

import (
	"context"

	"github.com/campushub/club-directory/internal/domain/entity"
	"gorm.io/gorm"
)

type ClubStorage struct {
	repo repository[entity.Club]
}

func NewClubStorage(db *gorm.DB) *ClubStorage {
	return &ClubStorage{
		repo: newRepository[entity.Club](db),
	}
}

// Create is a function that creates a new club in the database.
func (s *ClubStorage) Create(ctx context.Context, club *entity.Club) (*entity.Club, error) {
	return s.repo.Create(ctx, club)
}

// Get is a function that gets a club from the database by id.
func (s *ClubStorage) Get(ctx context.Context, id string) (*entity.Club, error) {
	return s.repo.FindOne(ctx, map[string]interface{}{"id": id})
}

// GetAll is a function that gets all clubs from the database.
func (s *ClubStorage) GetAll(ctx context.Context) ([]entity.Club, error) {
	return s.repo.FindMany(ctx, nil)
}

// Update is a function that applies a partial patch to a club by id.
func (s *ClubStorage) Update(ctx context.Context, id string, patch map[string]interface{}) (*entity.Club, error) {
	return s.repo.Update(ctx, map[string]interface{}{"id": id}, patch)
}

// Delete is a function that deletes a club from the database and returns it.
func (s *ClubStorage) Delete(ctx context.Context, id string) (*entity.Club, error) {
	return s.repo.Delete(ctx, map[string]interface{}{"id": id})
}

package service

import (
	"context"
	"errors"

	"github.com/campushub/club-directory/internal/adapters/logger"
	"github.com/campushub/club-directory/internal/domain/common/errorz"
	"github.com/campushub/club-directory/internal/domain/dto"
	"github.com/campushub/club-directory/internal/domain/entity"
	"github.com/campushub/club-directory/internal/domain/utils/validator"
	"github.com/google/uuid"
)

type ClubStorage interface {
	Create(ctx context.Context, club *entity.Club) (*entity.Club, error)
	Get(ctx context.Context, id string) (*entity.Club, error)
	GetAll(ctx context.Context) ([]entity.Club, error)
	Update(ctx context.Context, id string, patch map[string]interface{}) (*entity.Club, error)
	Delete(ctx context.Context, id string) (*entity.Club, error)
}

type IdentityStorage interface {
	GetBySecret(ctx context.Context, secret string) (*entity.User, error)
}

type ClubCache interface {
	Get(ctx context.Context) ([]entity.Club, error)
	Set(ctx context.Context, clubs []entity.Club) error
	Clear(ctx context.Context) error
}

type ClubService struct {
	storage  ClubStorage
	identity IdentityStorage
	cache    ClubCache
	logger   *logger.Logger
}

// NewClubService wires the club procedures. cache may be nil, in which case
// every listing goes straight to storage.
func NewClubService(storage ClubStorage, identity IdentityStorage, cache ClubCache, log *logger.Logger) *ClubService {
	return &ClubService{
		storage:  storage,
		identity: identity,
		cache:    cache,
		logger:   log,
	}
}

// Create inserts a new club with a generated id. The authorization gate runs
// before the validation gate, so an unauthorized caller learns nothing about
// payload validity.
func (s *ClubService) Create(ctx context.Context, token string, input dto.CreateClub) (*entity.Club, error) {
	if err := s.authorize(ctx, token); err != nil {
		return nil, err
	}
	if !validator.ClubName(input.Name) ||
		!validator.ClubDescription(input.Description) ||
		!validator.ClubLinktree(input.Linktree) {
		return nil, errorz.InvalidPayload
	}

	club := &entity.Club{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Linktree:    input.Linktree,
		Image:       input.Image,
	}
	if club.Image == "" {
		club.Image = entity.DefaultClubImage
	}

	created, err := s.storage.Create(ctx, club)
	if err != nil {
		s.logger.Errorf("failed to create club: %v", err)
		return nil, err
	}
	s.invalidateList(ctx)
	return created, nil
}

// Update applies a partial patch to an existing club. The id is immutable and
// an omitted image falls back to the default, matching Create.
func (s *ClubService) Update(ctx context.Context, token string, id string, input dto.UpdateClub) (*entity.Club, error) {
	if err := s.authorize(ctx, token); err != nil {
		return nil, err
	}
	if !validator.ClubName(input.Name) || !validator.ClubDescription(input.Description) {
		return nil, errorz.InvalidPayload
	}
	if input.Linktree != nil && !validator.ClubLinktree(*input.Linktree) {
		return nil, errorz.InvalidPayload
	}

	patch := map[string]interface{}{
		"name":        input.Name,
		"description": input.Description,
		"image":       input.Image,
	}
	if input.Image == "" {
		patch["image"] = entity.DefaultClubImage
	}
	if input.Linktree != nil {
		patch["linktree"] = *input.Linktree
	}

	updated, err := s.storage.Update(ctx, id, patch)
	if err != nil {
		if !errors.Is(err, errorz.NotFound) {
			s.logger.Errorf("failed to update club %s: %v", id, err)
		}
		return nil, err
	}
	s.invalidateList(ctx)
	return updated, nil
}

// Delete removes a club and returns the deleted row.
func (s *ClubService) Delete(ctx context.Context, token string, id string) (*entity.Club, error) {
	if err := s.authorize(ctx, token); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, errorz.InvalidPayload
	}

	deleted, err := s.storage.Delete(ctx, id)
	if err != nil {
		if !errors.Is(err, errorz.NotFound) {
			s.logger.Errorf("failed to delete club %s: %v", id, err)
		}
		return nil, err
	}
	s.invalidateList(ctx)
	return deleted, nil
}

// Get is a public read, no token required.
func (s *ClubService) Get(ctx context.Context, id string) (*entity.Club, error) {
	club, err := s.storage.Get(ctx, id)
	if err != nil && !errors.Is(err, errorz.NotFound) {
		s.logger.Errorf("failed to get club %s: %v", id, err)
	}
	return club, err
}

// GetAll is a public read serving from the list cache when warm. A store
// fault collapses to an empty listing; the fault itself only reaches the logs.
func (s *ClubService) GetAll(ctx context.Context) []entity.Club {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err == nil {
			return cached
		}
		if !errors.Is(err, errorz.NotFound) {
			s.logger.Warnf("club list cache read failed: %v", err)
		}
	}

	clubs, err := s.storage.GetAll(ctx)
	if err != nil {
		s.logger.Errorf("failed to list clubs: %v", err)
		return []entity.Club{}
	}

	if s.cache != nil {
		if err = s.cache.Set(ctx, clubs); err != nil {
			s.logger.Warnf("club list cache write failed: %v", err)
		}
	}
	return clubs
}

// authorize resolves the bearer token into an identity and requires the ADMIN
// permission. A missing identity and an insufficient permission set are
// deliberately indistinguishable to the caller.
func (s *ClubService) authorize(ctx context.Context, token string) error {
	// an absent token must never reach the secret lookup: a provider row with
	// an empty secret would otherwise authorize anonymous callers
	if token == "" {
		return errorz.Forbidden
	}
	user, err := s.identity.GetBySecret(ctx, token)
	if err != nil {
		if !errors.Is(err, errorz.NotFound) {
			s.logger.Errorf("identity lookup failed: %v", err)
		}
		return errorz.Forbidden
	}
	if !user.IsAdmin() {
		return errorz.Forbidden
	}
	return nil
}

func (s *ClubService) invalidateList(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Clear(ctx); err != nil {
		s.logger.Warnf("club list cache clear failed: %v", err)
	}
}

package clubs

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/campushub/club-directory/internal/domain/common/errorz"
	"github.com/campushub/club-directory/internal/domain/entity"
	"github.com/redis/go-redis/v9"
)

const listKey = "clubs:all"

// Storage caches the public club listing as a single JSON payload.
type Storage struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStorage(client *redis.Client, ttl time.Duration) *Storage {
	return &Storage{
		redis: client,
		ttl:   ttl,
	}
}

func (s *Storage) Get(ctx context.Context) ([]entity.Club, error) {
	data, err := s.redis.Get(ctx, listKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errorz.NotFound
	}
	if err != nil {
		return nil, err
	}

	var result []entity.Club
	if err = json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Storage) Set(ctx context.Context, clubList []entity.Club) error {
	data, err := json.Marshal(clubList)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, listKey, data, s.ttl).Err()
}

func (s *Storage) Clear(ctx context.Context) error {
	return s.redis.Del(ctx, listKey).Err()
}

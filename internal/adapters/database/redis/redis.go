package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/campushub/club-directory/internal/adapters/database/redis/clubs"
	"github.com/redis/go-redis/v9"
)

type Client struct {
	Clubs *clubs.Storage
}

type Options struct {
	Host     string
	Port     string
	Password string
	ListTTL  time.Duration
}

func New(opts Options) (*Client, error) {
	clubStorage := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       0,
	})
	if err := clubStorage.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping club storage: %w", err)
	}

	return &Client{
		Clubs: clubs.NewStorage(clubStorage, opts.ListTTL),
	}, nil
}

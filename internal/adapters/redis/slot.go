package redisad

import (
	"context"

	"wanderlust/internal/domain"
)

// Slot persists the signed-in user under one fixed key with no expiry.
type Slot struct {
	cache domain.Cache
	key   string
}

func NewSlot(cache domain.Cache, key string) *Slot {
	return &Slot{cache: cache, key: key}
}

func (s *Slot) Load(ctx context.Context, dst any) (bool, error) {
	return s.cache.Get(ctx, s.key, dst)
}

func (s *Slot) Save(ctx context.Context, v any) error {
	return s.cache.Set(ctx, s.key, v, 0)
}

func (s *Slot) Clear(ctx context.Context) error {
	return s.cache.Del(ctx, s.key)
}

package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"wanderlust/internal/domain"
)

// DatasetCacheKey is where CachedSource keeps the last loaded dataset.
const DatasetCacheKey = "wanderlust:dataset"

// CachedSource is a read-through cache in front of a slow DatasetSource.
// Cache failures are logged and never fail the load.
type CachedSource struct {
	src   domain.DatasetSource
	cache domain.Cache
	ttl   time.Duration
}

func NewCachedSource(src domain.DatasetSource, c domain.Cache, ttl time.Duration) *CachedSource {
	return &CachedSource{src: src, cache: c, ttl: ttl}
}

func (s *CachedSource) LoadDataset(ctx context.Context) (domain.Dataset, error) {
	var ds domain.Dataset
	ok, err := s.cache.Get(ctx, DatasetCacheKey, &ds)
	if err != nil {
		log.Warn().Err(err).Msg("dataset cache read failed")
	}
	if ok && err == nil {
		return ds, nil
	}

	ds, err = s.src.LoadDataset(ctx)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("load dataset: %w", err)
	}
	if err := s.cache.Set(ctx, DatasetCacheKey, ds, int(s.ttl.Seconds())); err != nil {
		log.Warn().Err(err).Msg("dataset cache write failed")
	}
	return ds, nil
}

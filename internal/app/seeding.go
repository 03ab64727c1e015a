package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"wanderlust/internal/domain"
)

// SeedService copies a dataset from a source into durable storage.
type SeedService struct {
	src     domain.DatasetSource
	sink    domain.DatasetSink
	cache   domain.Cache
	workers int64
}

// NewSeedService fans room upserts out over workers goroutines. cache may be
// nil; when set, the cached dataset is evicted after a successful run.
func NewSeedService(src domain.DatasetSource, sink domain.DatasetSink, cache domain.Cache, workers int) *SeedService {
	if workers < 1 {
		workers = 1
	}
	return &SeedService{src: src, sink: sink, cache: cache, workers: int64(workers)}
}

type SeedReport struct {
	Users    int
	Hotels   int
	Rooms    int
	Bookings int
	Staff    int
}

// Seed writes users first, then hotels in dataset order, then the rooms of
// each hotel concurrently, then the records that reference them. Storage
// assigns row order on insert, so hotel rows are never written in parallel.
// Hotel failures are collected so one bad hotel does not stop the rest.
func (s *SeedService) Seed(ctx context.Context) (SeedReport, error) {
	var rep SeedReport
	ds, err := s.src.LoadDataset(ctx)
	if err != nil {
		return rep, fmt.Errorf("load dataset: %w", err)
	}

	for _, u := range ds.Users {
		if err := s.sink.UpsertUser(ctx, u); err != nil {
			return rep, fmt.Errorf("upsert user %s: %w", u.ID, err)
		}
		rep.Users++
	}

	var errs []error
	seeded := make([]domain.Hotel, 0, len(ds.Hotels))
	for _, h := range ds.Hotels {
		if err := s.sink.UpsertHotel(ctx, h); err != nil {
			log.Warn().Str("hotel", h.ID).Err(err).Msg("seed hotel failed")
			errs = append(errs, fmt.Errorf("upsert hotel %s: %w", h.ID, err))
			continue
		}
		seeded = append(seeded, h)
		rep.Hotels++
	}

	roomsByHotel := make(map[string][]domain.Room, len(ds.Hotels))
	for _, r := range ds.Rooms {
		roomsByHotel[r.HotelID] = append(roomsByHotel[r.HotelID], r)
	}

	var (
		sem = semaphore.NewWeighted(s.workers)
		wg  sync.WaitGroup
		mu  sync.Mutex
	)
	for _, h := range seeded {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return rep, err
		}
		wg.Add(1)
		go func(hotelID string, rooms []domain.Room) {
			defer wg.Done()
			defer sem.Release(1)

			n, err := s.seedRooms(ctx, rooms)
			mu.Lock()
			defer mu.Unlock()
			rep.Rooms += n
			if err != nil {
				log.Warn().Str("hotel", hotelID).Err(err).Msg("seed rooms failed")
				errs = append(errs, err)
				return
			}
			log.Debug().Str("hotel", hotelID).Int("rooms", n).Msg("seed hotel ok")
		}(h.ID, roomsByHotel[h.ID])
	}
	wg.Wait()
	if len(errs) > 0 {
		return rep, errors.Join(errs...)
	}

	for _, b := range ds.Bookings {
		if err := s.sink.UpsertBooking(ctx, b); err != nil {
			return rep, fmt.Errorf("upsert booking %s: %w", b.ID, err)
		}
		rep.Bookings++
	}
	for _, m := range ds.Staff {
		if err := s.sink.UpsertStaff(ctx, m); err != nil {
			return rep, fmt.Errorf("upsert staff %s: %w", m.ID, err)
		}
		rep.Staff++
	}

	if s.cache != nil {
		if err := s.cache.Del(ctx, DatasetCacheKey); err != nil {
			log.Warn().Err(err).Msg("dataset cache eviction failed")
		}
	}
	return rep, nil
}

// seedRooms writes one hotel's rooms in dataset order.
func (s *SeedService) seedRooms(ctx context.Context, rooms []domain.Room) (int, error) {
	for i, r := range rooms {
		if err := s.sink.UpsertRoom(ctx, r); err != nil {
			return i, fmt.Errorf("upsert room %s: %w", r.ID, err)
		}
	}
	return len(rooms), nil
}

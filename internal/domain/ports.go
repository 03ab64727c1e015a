package domain

import "context"

// Dataset is the seed data every in-memory collection is built from.
type Dataset struct {
	Users    []User    `json:"users"`
	Hotels   []Hotel   `json:"hotels"`
	Rooms    []Room    `json:"rooms"`
	Bookings []Booking `json:"bookings"`
	Staff    []Staff   `json:"staff"`
}

type DatasetSource interface {
	LoadDataset(ctx context.Context) (Dataset, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// SessionSlot is the single durable slot that holds the signed-in user.
type SessionSlot interface {
	Load(ctx context.Context, dst any) (bool, error)
	Save(ctx context.Context, v any) error
	Clear(ctx context.Context) error
}

// DatasetSink persists seed records; upserts are idempotent by id.
type DatasetSink interface {
	UpsertUser(ctx context.Context, u User) error
	UpsertHotel(ctx context.Context, h Hotel) error
	UpsertRoom(ctx context.Context, r Room) error
	UpsertBooking(ctx context.Context, b Booking) error
	UpsertStaff(ctx context.Context, s Staff) error
}

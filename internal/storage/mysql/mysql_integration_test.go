//go:build integration

package mysql_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/internal/fixtures"
	mysqlrepo "wanderlust/internal/storage/mysql"
)

func startMySQL(t *testing.T) *sqlx.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "dockertest")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=wanderlust",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "run mysql")
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/wanderlust?charset=utf8mb4", resource.GetPort("3306/tcp"))

	pool.MaxWait = 2 * time.Minute
	var db *sqlx.DB
	require.NoError(t, pool.Retry(func() error {
		var e error
		db, e = mysqlrepo.Open(context.Background(), dsn)
		return e
	}), "connect mysql")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRepo_MySQL_SeedAndLoad(t *testing.T) {
	db := startMySQL(t)
	ctx := context.Background()

	require.NoError(t, mysqlrepo.Migrate(db.DB))
	require.NoError(t, mysqlrepo.Migrate(db.DB), "second run is a no-op")

	want, err := fixtures.Load()
	require.NoError(t, err)

	repo := mysqlrepo.New(db)
	for _, u := range want.Users {
		require.NoError(t, repo.UpsertUser(ctx, u))
	}
	for _, h := range want.Hotels {
		require.NoError(t, repo.UpsertHotel(ctx, h))
	}
	for _, r := range want.Rooms {
		require.NoError(t, repo.UpsertRoom(ctx, r))
	}
	for _, b := range want.Bookings {
		require.NoError(t, repo.UpsertBooking(ctx, b))
	}
	for _, s := range want.Staff {
		require.NoError(t, repo.UpsertStaff(ctx, s))
	}

	// upserting again must not duplicate or reorder
	require.NoError(t, repo.UpsertHotel(ctx, want.Hotels[0]))

	got, err := repo.LoadDataset(ctx)
	require.NoError(t, err)

	assert.Equal(t, want.Users, got.Users)
	assert.Equal(t, want.Hotels, got.Hotels)
	assert.Equal(t, want.Rooms, got.Rooms)
	require.Len(t, got.Bookings, len(want.Bookings))
	for i := range want.Bookings {
		assert.Equal(t, want.Bookings[i].ID, got.Bookings[i].ID)
		assert.Equal(t, want.Bookings[i].Status, got.Bookings[i].Status)
		assert.True(t, want.Bookings[i].CheckIn.Equal(got.Bookings[i].CheckIn))
		assert.Equal(t, want.Bookings[i].TotalPrice, got.Bookings[i].TotalPrice)
	}
}

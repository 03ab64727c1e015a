package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"wanderlust/internal/shared"
)

func TestLoad_Defaults(t *testing.T) {
	c := shared.Load()
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, "wanderlust_user", c.SessionKey)
	assert.Equal(t, shared.SourceEmbedded, c.FixtureSource)
	assert.Equal(t, "password", c.DemoPassword)
	assert.Equal(t, time.Second, c.LoginDelay)
	assert.False(t, c.BookingAutoConfirm)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("FIXTURE_SOURCE", "MySQL")
	t.Setenv("LOGIN_DELAY", "250ms")
	t.Setenv("REQUEST_TIMEOUT", "3")
	t.Setenv("TRUST_PROXY", "true")
	t.Setenv("BOOKING_AUTO_CONFIRM", "true")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("SEED_WORKERS", "not-a-number")
	t.Setenv("LOGIN_RPS", "0.5")

	c := shared.Load()
	assert.Equal(t, shared.SourceMySQL, c.FixtureSource)
	assert.Equal(t, 250*time.Millisecond, c.LoginDelay)
	assert.Equal(t, 3*time.Second, c.RequestTimeout)
	assert.True(t, c.TrustProxy)
	assert.True(t, c.BookingAutoConfirm)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, c.CORSOrigins)
	assert.Equal(t, 8, c.SeedWorkers)
	assert.Equal(t, 0.5, c.LoginRPS)
}

func TestLoad_UnknownSourceFallsBack(t *testing.T) {
	t.Setenv("FIXTURE_SOURCE", "s3")
	assert.Equal(t, shared.SourceEmbedded, shared.Load().FixtureSource)
}

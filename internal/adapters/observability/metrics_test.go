package observability_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/internal/adapters/observability"
	"wanderlust/internal/domain"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record one sample so counters are non-zero
	observability.ObserveHTTP("/test", "GET", 200, 12*time.Millisecond)
	observability.ObserveBooking("create", nil)
	observability.ObserveLogin(domain.ErrInvalidCredentials)

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	assert.True(t, strings.Contains(out, "wanderlust_http_requests_total"))
	assert.True(t, strings.Contains(out, `wanderlust_booking_events_total{action="create",result="ok"}`))
	assert.True(t, strings.Contains(out, `wanderlust_login_attempts_total{result="invalid_credentials"}`))
}

func TestLabelErr(t *testing.T) {
	assert.Equal(t, "ok", observability.LabelErr(nil))
	assert.Equal(t, "not_found", observability.LabelErr(fmt.Errorf("hotel %q: %w", "x", domain.ErrNotFound)))
	assert.Equal(t, "invalid_transition", observability.LabelErr(domain.ErrInvalidTransition))
	assert.Equal(t, "error", observability.LabelErr(io.EOF))
}

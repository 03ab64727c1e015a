package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking_Confirm(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		status  BookingStatus
		wantErr error
	}{
		{"pending can be confirmed", StatusPending, nil},
		{"confirmed cannot be confirmed again", StatusConfirmed, ErrInvalidTransition},
		{"cancelled cannot be confirmed", StatusCancelled, ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Booking{ID: "b1", Status: tt.status}
			err := b.Confirm(now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.status, b.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusConfirmed, b.Status)
			assert.Equal(t, now, b.UpdatedAt)
		})
	}
}

func TestBooking_Cancel(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		status  BookingStatus
		wantErr error
	}{
		{"pending can be cancelled", StatusPending, nil},
		{"confirmed can be cancelled", StatusConfirmed, nil},
		{"cancelled cannot be cancelled again", StatusCancelled, ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Booking{ID: "b1", Status: tt.status}
			err := b.Cancel(now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusCancelled, b.Status)
		})
	}
}

func TestBooking_DoubleCancelRejected(t *testing.T) {
	b := Booking{ID: "b1", Status: StatusPending}
	require.NoError(t, b.Cancel(time.Now()))
	assert.ErrorIs(t, b.Cancel(time.Now()), ErrInvalidTransition)
	assert.ErrorIs(t, b.Confirm(time.Now()), ErrInvalidTransition)
}

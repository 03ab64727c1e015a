package app

import (
	"time"

	"wanderlust/internal/domain"
)

const secondsPerDay = 24 * 60 * 60

// Quote prices a stay: nights is the check-in/check-out gap in days rounded up.
// The gap is counted in Unix seconds; time.Duration saturates near 292 years.
func Quote(room domain.Room, checkIn, checkOut time.Time) (domain.Quote, error) {
	if !checkOut.After(checkIn) {
		return domain.Quote{}, domain.ErrInvalidDateRange
	}
	secs := checkOut.Unix() - checkIn.Unix()
	nsec := checkOut.Nanosecond() - checkIn.Nanosecond()
	if nsec < 0 {
		secs--
		nsec += int(time.Second)
	}
	nights := secs / secondsPerDay
	if secs%secondsPerDay != 0 || nsec != 0 {
		nights++
	}
	return domain.Quote{Nights: int(nights), Total: float64(nights) * room.Price}, nil
}

// Calendar days are UTC days: request dates parse to UTC midnight and now is
// converted to UTC before comparing.

// CheckInSelectable accepts days after today; today itself has already begun.
func CheckInSelectable(date, now time.Time) bool {
	return utcDay(date).After(utcDay(now))
}

// CheckOutSelectable rejects days on or before the check-in day and days up to today.
func CheckOutSelectable(date, checkIn, now time.Time) bool {
	d := utcDay(date)
	if !checkIn.IsZero() && !d.After(utcDay(checkIn)) {
		return false
	}
	return d.After(utcDay(now))
}

func utcDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

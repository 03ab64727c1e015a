package app

import (
	"math"
	"sort"
	"time"

	"wanderlust/internal/domain"
)

const recentBookings = 5

type HotelSummary struct {
	HotelID      string  `json:"hotelId"`
	Name         string  `json:"name"`
	City         string  `json:"city"`
	Rooms        int     `json:"rooms"`
	AvgRoomPrice float64 `json:"avgRoomPrice"`
	Featured     bool    `json:"featured"`
}

type AdminOverview struct {
	TotalBookings   int              `json:"totalBookings"`
	TotalRevenue    float64          `json:"totalRevenue"`
	PendingBookings int              `json:"pendingBookings"`
	AvailableRooms  int              `json:"availableRooms"`
	RecentBookings  []domain.Booking `json:"recentBookings"`
	Hotels          []HotelSummary   `json:"hotels"`
	Staff           []domain.Staff   `json:"staff"`
}

type UserOverview struct {
	Bookings   []domain.Booking `json:"bookings"`
	Upcoming   int              `json:"upcoming"`
	TotalSpent float64          `json:"totalSpent"`
}

type DashboardService struct {
	catalog  *CatalogService
	bookings *BookingService
	admin    *AdminService
	now      func() time.Time
}

func NewDashboardService(c *CatalogService, b *BookingService, a *AdminService) *DashboardService {
	return &DashboardService{catalog: c, bookings: b, admin: a, now: time.Now}
}

// Admin summarises every booking. Revenue counts all bookings regardless of status.
func (d *DashboardService) Admin() AdminOverview {
	all := d.bookings.All()
	out := AdminOverview{TotalBookings: len(all), Staff: d.admin.Staff.List()}
	for _, b := range all {
		out.TotalRevenue += b.TotalPrice
		if b.Status == domain.StatusPending {
			out.PendingBookings++
		}
	}

	recent := append([]domain.Booking(nil), all...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].CreatedAt.After(recent[j].CreatedAt) })
	if len(recent) > recentBookings {
		recent = recent[:recentBookings]
	}
	out.RecentBookings = recent

	for _, r := range d.catalog.AllRooms() {
		if r.Available {
			out.AvailableRooms++
		}
	}

	hotels := d.admin.Hotels.List()
	out.Hotels = make([]HotelSummary, 0, len(hotels))
	for _, h := range hotels {
		rooms := d.catalog.Rooms(h.ID)
		sum := HotelSummary{HotelID: h.ID, Name: h.Name, City: h.City, Rooms: len(rooms), Featured: h.Featured}
		if len(rooms) > 0 {
			var total float64
			for _, r := range rooms {
				total += r.Price
			}
			sum.AvgRoomPrice = math.Round(total / float64(len(rooms)))
		}
		out.Hotels = append(out.Hotels, sum)
	}
	return out
}

func (d *DashboardService) User(userID string) UserOverview {
	mine := d.bookings.ForUser(userID)
	now := d.now()
	out := UserOverview{Bookings: mine}
	for _, b := range mine {
		out.TotalSpent += b.TotalPrice
		if b.CheckIn.After(now) {
			out.Upcoming++
		}
	}
	return out
}

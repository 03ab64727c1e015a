package mysql

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"wanderlust/internal/domain"
)

// stringList is a []string stored in a JSON column.
type stringList []string

func (l stringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *stringList) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("stringList: unsupported type %T", src)
	}
	return json.Unmarshal(b, (*[]string)(l))
}

type userRow struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Email  string `db:"email"`
	Role   string `db:"role"`
	Avatar string `db:"avatar"`
}

type hotelRow struct {
	ID          string     `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Address     string     `db:"address"`
	City        string     `db:"city"`
	Country     string     `db:"country"`
	Rating      float64    `db:"rating"`
	ReviewCount int        `db:"review_count"`
	Price       float64    `db:"price"`
	Images      stringList `db:"images"`
	Amenities   stringList `db:"amenities"`
	Featured    bool       `db:"featured"`
}

type roomRow struct {
	ID          string     `db:"id"`
	HotelID     string     `db:"hotel_id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Price       float64    `db:"price"`
	Capacity    int        `db:"capacity"`
	Images      stringList `db:"images"`
	Amenities   stringList `db:"amenities"`
	Available   bool       `db:"available"`
}

type bookingRow struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	HotelID    string    `db:"hotel_id"`
	RoomID     string    `db:"room_id"`
	CheckIn    time.Time `db:"check_in"`
	CheckOut   time.Time `db:"check_out"`
	Guests     int       `db:"guests"`
	Status     string    `db:"status"`
	TotalPrice float64   `db:"total_price"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type staffRow struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Role    string `db:"role"`
	Phone   string `db:"phone"`
	HotelID string `db:"hotel_id"`
}

func (r userRow) toEntity() domain.User {
	return domain.User{ID: r.ID, Name: r.Name, Email: r.Email, Role: domain.Role(r.Role), Avatar: r.Avatar}
}

func (r hotelRow) toEntity() domain.Hotel {
	return domain.Hotel{
		ID: r.ID, Name: r.Name, Description: r.Description, Address: r.Address,
		City: r.City, Country: r.Country, Rating: r.Rating, ReviewCount: r.ReviewCount,
		Price: r.Price, Images: r.Images, Amenities: r.Amenities, Featured: r.Featured,
	}
}

func (r roomRow) toEntity() domain.Room {
	return domain.Room{
		ID: r.ID, HotelID: r.HotelID, Name: r.Name, Description: r.Description,
		Price: r.Price, Capacity: r.Capacity, Images: r.Images, Amenities: r.Amenities,
		Available: r.Available,
	}
}

func (r bookingRow) toEntity() domain.Booking {
	return domain.Booking{
		ID: r.ID, UserID: r.UserID, HotelID: r.HotelID, RoomID: r.RoomID,
		CheckIn: r.CheckIn, CheckOut: r.CheckOut, Guests: r.Guests,
		Status: domain.BookingStatus(r.Status), TotalPrice: r.TotalPrice,
		CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

func (r staffRow) toEntity() domain.Staff {
	return domain.Staff{ID: r.ID, Name: r.Name, Email: r.Email, Role: r.Role, Phone: r.Phone, HotelID: r.HotelID}
}

// Repo reads and seeds the fixture tables.
type Repo struct{ db *sqlx.DB }

func New(db *sqlx.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertUser(ctx context.Context, u domain.User) error {
	_, err := r.db.NamedExecContext(ctx, upsertUserSQL, userRow{
		ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role), Avatar: u.Avatar,
	})
	return err
}

func (r *Repo) UpsertHotel(ctx context.Context, h domain.Hotel) error {
	_, err := r.db.NamedExecContext(ctx, upsertHotelSQL, hotelRow{
		ID: h.ID, Name: h.Name, Description: h.Description, Address: h.Address,
		City: h.City, Country: h.Country, Rating: h.Rating, ReviewCount: h.ReviewCount,
		Price: h.Price, Images: h.Images, Amenities: h.Amenities, Featured: h.Featured,
	})
	return err
}

func (r *Repo) UpsertRoom(ctx context.Context, rm domain.Room) error {
	_, err := r.db.NamedExecContext(ctx, upsertRoomSQL, roomRow{
		ID: rm.ID, HotelID: rm.HotelID, Name: rm.Name, Description: rm.Description,
		Price: rm.Price, Capacity: rm.Capacity, Images: rm.Images, Amenities: rm.Amenities,
		Available: rm.Available,
	})
	return err
}

func (r *Repo) UpsertBooking(ctx context.Context, b domain.Booking) error {
	_, err := r.db.NamedExecContext(ctx, upsertBookingSQL, bookingRow{
		ID: b.ID, UserID: b.UserID, HotelID: b.HotelID, RoomID: b.RoomID,
		CheckIn: b.CheckIn.UTC(), CheckOut: b.CheckOut.UTC(), Guests: b.Guests,
		Status: string(b.Status), TotalPrice: b.TotalPrice,
		CreatedAt: b.CreatedAt.UTC(), UpdatedAt: b.UpdatedAt.UTC(),
	})
	return err
}

func (r *Repo) UpsertStaff(ctx context.Context, s domain.Staff) error {
	_, err := r.db.NamedExecContext(ctx, upsertStaffSQL, staffRow{
		ID: s.ID, Name: s.Name, Email: s.Email, Role: s.Role, Phone: s.Phone, HotelID: s.HotelID,
	})
	return err
}

// LoadDataset implements domain.DatasetSource.
func (r *Repo) LoadDataset(ctx context.Context) (domain.Dataset, error) {
	var ds domain.Dataset
	var err error
	if ds.Users, err = selectAll[userRow, domain.User](ctx, r.db, selectUsersSQL); err != nil {
		return domain.Dataset{}, fmt.Errorf("load users: %w", err)
	}
	if ds.Hotels, err = selectAll[hotelRow, domain.Hotel](ctx, r.db, selectHotelsSQL); err != nil {
		return domain.Dataset{}, fmt.Errorf("load hotels: %w", err)
	}
	if ds.Rooms, err = selectAll[roomRow, domain.Room](ctx, r.db, selectRoomsSQL); err != nil {
		return domain.Dataset{}, fmt.Errorf("load rooms: %w", err)
	}
	if ds.Bookings, err = selectAll[bookingRow, domain.Booking](ctx, r.db, selectBookingsSQL); err != nil {
		return domain.Dataset{}, fmt.Errorf("load bookings: %w", err)
	}
	if ds.Staff, err = selectAll[staffRow, domain.Staff](ctx, r.db, selectStaffSQL); err != nil {
		return domain.Dataset{}, fmt.Errorf("load staff: %w", err)
	}
	return ds, nil
}

type row[E any] interface {
	toEntity() E
}

func selectAll[R row[E], E any](ctx context.Context, db *sqlx.DB, query string) ([]E, error) {
	var rows []R
	if err := db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	out := make([]E, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toEntity())
	}
	return out, nil
}

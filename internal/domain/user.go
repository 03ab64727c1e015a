package domain

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// Staff is an admin-managed hotel employee record, unrelated to User accounts.
type Staff struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"min=2"`
	Email   string `json:"email" validate:"required,email"`
	Role    string `json:"role" validate:"required"`
	Phone   string `json:"phone" validate:"min=5"`
	HotelID string `json:"hotelId" validate:"required"`
}

func (s Staff) Key() string { return s.ID }

func (s Staff) WithKey(id string) Staff {
	s.ID = id
	return s
}

type StaffPatch struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Role    *string `json:"role"`
	Phone   *string `json:"phone"`
	HotelID *string `json:"hotelId"`
}

func (p StaffPatch) Apply(s Staff) Staff {
	setIf(&s.Name, p.Name)
	setIf(&s.Email, p.Email)
	setIf(&s.Role, p.Role)
	setIf(&s.Phone, p.Phone)
	setIf(&s.HotelID, p.HotelID)
	return s
}

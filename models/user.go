package models

import "time"

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleReceptionist Role = "receptionist"
	RoleVeterinarian Role = "veterinarian"
	RoleClient       Role = "client"
)

// CanManageReservations reports whether the role may cancel any
// reservation and change reservation statuses.
func (r Role) CanManageReservations() bool {
	return r == RoleAdmin
}

// CanViewAllReservations reports whether the role may list every
// customer's reservations.
func (r Role) CanViewAllReservations() bool {
	return r == RoleAdmin
}

// CanManageCatalog reports whether the role may create, update or delete
// products in the catalog.
func (r Role) CanManageCatalog() bool {
	return r == RoleAdmin
}

type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	NationalID string    `gorm:"size:15;uniqueIndex;not null" json:"national_id"`
	FirstName  string    `gorm:"size:100;not null" json:"first_name"`
	LastName   string    `gorm:"size:100" json:"last_name"`
	Email      string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone      string    `gorm:"size:20" json:"phone"`
	Address    string    `json:"address"`
	Password   string    `gorm:"size:255" json:"-"`
	Role       Role      `gorm:"type:VARCHAR(20);default:'client'" json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// FullName is used on invoices and exports.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

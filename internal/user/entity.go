// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID               string     `db:"id"`
	Email            string     `db:"email"`
	PasswordHash     string     `db:"password_hash"`
	FirstName        string     `db:"first_name"`
	LastName         string     `db:"last_name"`
	Phone            string     `db:"phone"`
	Role             Role       `db:"role"`
	TokenVersion     int        `db:"token_version"`
	RegistrationDate time.Time  `db:"registration_date"`
	UpdatedAt        time.Time  `db:"updated_at"`
	DeletedAt        *time.Time `db:"deleted_at"`
}

func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type Address struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	Line1      string    `db:"line1"`
	Line2      string    `db:"line2"`
	City       string    `db:"city"`
	PostalCode string    `db:"postal_code"`
	Country    string    `db:"country"`
	CreatedAt  time.Time `db:"created_at"`
}

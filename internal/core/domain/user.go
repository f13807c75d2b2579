package domain

import "time"

// Role identifies what an authenticated actor is allowed to see.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// AdminID is the id carried by sessions issued to the built-in administrator.
const AdminID = "admin"

// Built-in administrator identity. It is never stored in the users collection.
const (
	DefaultAdminEmail    = "lucas.alves@bankapp.com"
	DefaultAdminPassword = "Santos7@7@"
	AdminFullName        = "System Administrator"
)

// UnknownClientName labels investments whose owner is not a registered client.
const UnknownClientName = "Unknown"

// User models a registered club member.
//
// Password is kept in plain text; the stored shape mirrors what the
// registration form collects.
type User struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	Password           string    `json:"password"`
	FullName           string    `json:"fullName"`
	Phone              string    `json:"phone"`
	IntendedInvestment float64   `json:"intendedInvestment"`
	Role               Role      `json:"role"`
	CreatedAt          time.Time `json:"createdAt"`
}

// AdminCredentials is the fixed email/password pair that logs in as the administrator.
type AdminCredentials struct {
	Email    string
	Password string
}

// DefaultAdminCredentials returns the built-in administrator pair.
func DefaultAdminCredentials() AdminCredentials {
	return AdminCredentials{Email: DefaultAdminEmail, Password: DefaultAdminPassword}
}

// Matches reports an exact, case-sensitive match on both fields.
func (c AdminCredentials) Matches(email, password string) bool {
	return email == c.Email && password == c.Password
}

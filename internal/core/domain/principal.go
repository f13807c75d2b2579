package domain

import "time"

// Principal is the authenticated actor behind a session: either the built-in
// administrator or a stored client. The interface is sealed to this package.
type Principal interface {
	ID() string
	Role() Role
	Profile() User
	principal()
}

// Admin is the synthesized administrator principal.
type Admin struct {
	Email    string
	IssuedAt time.Time
}

func (Admin) ID() string { return AdminID }
func (Admin) Role() Role { return RoleAdmin }
func (Admin) principal() {}

// Profile renders the administrator as a User record. The password is left
// empty so the credential never travels outside the auth service.
func (a Admin) Profile() User {
	return User{
		ID:        AdminID,
		Email:     a.Email,
		FullName:  AdminFullName,
		Role:      RoleAdmin,
		CreatedAt: a.IssuedAt,
	}
}

// Client wraps a stored user.
type Client struct {
	User User
}

func (c Client) ID() string    { return c.User.ID }
func (c Client) Role() Role    { return c.User.Role }
func (c Client) Profile() User { return c.User }
func (Client) principal()      {}

package domain

import "errors"

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvestmentNotFound = errors.New("investment not found")
	ErrInvalidInvestment  = errors.New("invalid investment")
	ErrUnauthenticated    = errors.New("no active session")
	ErrForbidden          = errors.New("access forbidden")
)

// Notice is the user-facing rendition of an outcome, shown by the client as a toast.
type Notice struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// NoticeFor maps a known domain error to the message a user should see.
// ok is false for errors the user should not see verbatim.
func NoticeFor(err error) (n Notice, ok bool) {
	switch {
	case errors.Is(err, ErrDuplicateEmail):
		return Notice{"Registration failed", "Email already registered"}, true
	case errors.Is(err, ErrInvalidCredentials):
		return Notice{"Login failed", "Invalid email or password"}, true
	case errors.Is(err, ErrInvestmentNotFound):
		return Notice{"Investment not found", "The investment does not exist"}, true
	case errors.Is(err, ErrUserNotFound):
		return Notice{"Client not found", "The client does not exist"}, true
	case errors.Is(err, ErrInvalidInvestment):
		return Notice{"Invalid investment", err.Error()}, true
	case errors.Is(err, ErrUnauthenticated):
		return Notice{"Session required", "Please log in to continue"}, true
	case errors.Is(err, ErrForbidden):
		return Notice{"Access denied", "You don't have permission to access this page"}, true
	}
	return Notice{}, false
}

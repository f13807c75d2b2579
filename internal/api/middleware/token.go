package middleware

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bankapp/investment-club/internal/core/domain"
)

// SessionClaims is the bearer token payload. Subject carries the user id and
// ExpiresAt mirrors the stored session's expiry.
type SessionClaims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// SignSession issues an HS256 token describing the given session.
func SignSession(secret string, s domain.Session) (string, error) {
	claims := SessionClaims{
		Role: s.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID,
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func parseSession(secret, raw string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// matches reports whether the token describes the stored session. Token
// expiry has second precision.
func (c *SessionClaims) matches(s *domain.Session) bool {
	return s != nil &&
		c.Subject == s.UserID &&
		c.Role == s.Role &&
		c.ExpiresAt != nil &&
		c.ExpiresAt.Unix() == s.ExpiresAt.Unix()
}

package userservice

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type accessClaims struct {
	UserID    int    `json:"uid"`
	FirstName string `json:"first_name"`
	jwt.RegisteredClaims
}

// newAccessToken signs a time-bounded HS256 token embedding the user's
// identifier. The token is self-contained: verification never touches the
// database.
func newAccessToken(secret []byte, user *User, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := accessClaims{
		UserID:    user.ID,
		FirstName: user.FirstName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func parseAccessToken(secret []byte, token string) (int, error) {
	claims := &accessClaims{}

	tok, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}

package auth

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// tokenTTL is how long a login token stays valid.
const tokenTTL = 24 * time.Hour

// Claims are the JWT claims carried by a login token.
type Claims struct {
	Role      string `json:"role"`
	SessionID string `json:"sid,omitempty"`
	jwt.StandardClaims
}

// SignToken issues an HS256 token for the given identity.
func SignToken(secret []byte, username, role, sessionID string) (string, error) {
	claims := &Claims{
		Role:      role,
		SessionID: sessionID,
		StandardClaims: jwt.StandardClaims{
			Subject:   username,
			ExpiresAt: time.Now().Add(tokenTTL).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken validates a signed token and returns its claims.
func ParseToken(secret []byte, signed string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(signed, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

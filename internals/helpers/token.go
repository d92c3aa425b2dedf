package helper

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"ranglapunjab_backend/internals/configs"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// GenerateAdminToken issues a 24h HS256 token for the admin dashboard.
func GenerateAdminToken(email string) (string, time.Time, error) {
	expiresAt := time.Now().Add(24 * time.Hour)

	claims := jwt.MapClaims{
		"sub":  email,
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseAdminToken verifies signature, expiry and the admin role claim.
func ParseAdminToken(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

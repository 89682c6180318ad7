package service

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// InitJWT sets the signing secret for admin tokens.
func InitJWT(secret string) {
	if secret == "" {
		panic("JWT secret is not set")
	}
	jwtSecret = []byte(secret)
}

// AdminLogin exchanges the configured admin password for a bearer token.
// Tokens are self-expiring, so restarts and horizontal scaling do not
// invalidate live admin sessions.
func AdminLogin(configuredPassword, password string) (string, error) {
	if configuredPassword == "" {
		return "", errors.New("admin password not configured")
	}
	if subtle.ConstantTimeCompare([]byte(configuredPassword), []byte(password)) != 1 {
		return "", errors.New("invalid password")
	}

	now := time.Now().Unix()
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(12 * time.Hour).Unix(),
		"iat":  now,
		"nbf":  now,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseAdminToken validates an admin bearer token.
func ParseAdminToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return errors.New("invalid claims")
	}
	if role, _ := claims["role"].(string); role != "admin" {
		return errors.New("not an admin token")
	}
	return nil
}

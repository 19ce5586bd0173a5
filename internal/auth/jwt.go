package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtSecret returns the signing key for admin session tokens. Read from the
// environment on every call so .env loading order does not matter; the
// fallback keeps local development working without a .env file.
func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-only-secret-change-in-production"
	}
	return []byte(secret)
}

// GenerateToken creates a new JWT for a given admin user ID.
func GenerateToken(adminID int64) (string, error) {
	claims := jwt.MapClaims{
		"sub": adminID,                               // Subject: the admin user ID
		"exp": time.Now().Add(time.Hour * 72).Unix(), // Expires in 3 days
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token string.
// It returns the admin user ID (subject) if the token is valid.
func ValidateToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return 0, err // Expired, malformed, or signed with another key
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		adminIDFloat, ok := claims["sub"].(float64)
		if !ok {
			return 0, errors.New("invalid subject claim")
		}
		// JSON numbers decode as float64; convert back.
		return int64(adminIDFloat), nil
	}

	return 0, errors.New("invalid token")
}

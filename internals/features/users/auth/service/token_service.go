// file: internals/features/users/auth/service/token_service.go
package service

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"studentcrm_backend/internals/configs"
)

const accessTTL = 1 * time.Hour

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		// No default secret: refuse to sign rather than sign with a
		// well-known value.
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	return secret, nil
}

// GenerateToken signs a stateless access token carrying the principal.
func GenerateToken(username, role string) (string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
		"iat":      now.Unix(),
		"exp":      now.Add(accessTTL).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

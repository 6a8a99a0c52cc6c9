// file: internals/features/users/auth/service/password_service.go
package service

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// GeneratePassword derives the initial password for a new student or
// teacher: first three lowercase letters of the name + last two digits of
// the birth year (e.g. "John Doe", 1990 -> "joh90"). It is a fixed,
// non-secret transform; the plaintext is handed to the caller exactly once
// at creation time and only the bcrypt hash is stored.
func GeneratePassword(name string, dateOfBirth time.Time) string {
	letters := make([]rune, 0, 3)
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
			if len(letters) == 3 {
				break
			}
		}
	}
	yearPart := fmt.Sprintf("%02d", dateOfBirth.Year()%100)
	return string(letters) + yearPart
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword checks a plaintext password against a stored hash.
func ComparePassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

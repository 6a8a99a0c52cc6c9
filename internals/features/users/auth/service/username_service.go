// file: internals/features/users/auth/service/username_service.go
package service

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"gorm.io/gorm"
)

// Usernames are derived deterministically from the person's name and date
// of birth, then made unique within their collection with an incrementing
// numeric suffix. They are immutable after creation.

// StudentUsernameBase builds the base username for a student:
// lowercase letters of the name + "_" + DDMMYYYY.
func StudentUsernameBase(name string, dateOfBirth time.Time) string {
	return lettersOnlyLower(name) + "_" + dateOfBirth.Format("02012006")
}

// TeacherUsernameBase builds the base username for a teacher:
// lowercase letters of the name + "_" + YYYYMMDD. The date order differs
// from students; kept as observed.
func TeacherUsernameBase(name string, dateOfBirth time.Time) string {
	return lettersOnlyLower(name) + "_" + dateOfBirth.Format("20060102")
}

// EnsureUniqueUsername probes base, base_1, base_2, ... until exists
// reports a free candidate.
func EnsureUniqueUsername(base string, exists func(username string) (bool, error)) (string, error) {
	username := base
	counter := 1
	for {
		taken, err := exists(username)
		if err != nil {
			return "", err
		}
		if !taken {
			return username, nil
		}
		username = fmt.Sprintf("%s_%d", base, counter)
		counter++
	}
}

// GenerateStudentUsername returns a username unique within the students
// collection.
func GenerateStudentUsername(db *gorm.DB, name string, dateOfBirth time.Time) (string, error) {
	return EnsureUniqueUsername(StudentUsernameBase(name, dateOfBirth), func(username string) (bool, error) {
		var count int64
		if err := db.Table("students").
			Where("student_username = ?", username).
			Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	})
}

// GenerateTeacherUsername returns a username unique within the teachers
// collection.
func GenerateTeacherUsername(db *gorm.DB, name string, dateOfBirth time.Time) (string, error) {
	return EnsureUniqueUsername(TeacherUsernameBase(name, dateOfBirth), func(username string) (bool, error) {
		var count int64
		if err := db.Table("teachers").
			Where("teacher_username = ?", username).
			Count(&count).Error; err != nil {
			return false, err
		}
		return count > 0, nil
	})
}

func lettersOnlyLower(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

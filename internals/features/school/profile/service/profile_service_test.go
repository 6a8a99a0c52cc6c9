// file: internals/features/school/profile/service/profile_service_test.go
package service

import (
	"errors"
	"testing"
	"time"

	"studentcrm_backend/internals/constants"
)

func TestFilterProfileUpdatesAllowed(t *testing.T) {
	updates, err := FilterProfileUpdates(constants.RoleStudent, map[string]interface{}{
		"student_name":          "John Smith Jr",
		"student_contact":       "08123456789",
		"student_gender":        "Male",
		"student_date_of_birth": "2008-03-14",
	})
	if err != nil {
		t.Fatalf("FilterProfileUpdates: %v", err)
	}
	if updates["student_name"] != "John Smith Jr" {
		t.Errorf("student_name = %v", updates["student_name"])
	}
	dob, ok := updates["student_date_of_birth"].(time.Time)
	if !ok || dob.Year() != 2008 || dob.Month() != time.March || dob.Day() != 14 {
		t.Errorf("student_date_of_birth = %v", updates["student_date_of_birth"])
	}
}

func TestFilterProfileUpdatesRejectsUnknownKey(t *testing.T) {
	_, err := FilterProfileUpdates(constants.RoleStudent, map[string]interface{}{
		"student_name":      "x",
		"student_fees_paid": true,
	})
	if !errors.Is(err, ErrInvalidUpdates) {
		t.Fatalf("err = %v, want ErrInvalidUpdates", err)
	}
}

func TestFilterProfileUpdatesRejectsCredentialFields(t *testing.T) {
	for _, key := range []string{"student_username", "student_password", "student_class_id", "role"} {
		_, err := FilterProfileUpdates(constants.RoleStudent, map[string]interface{}{key: "x"})
		if !errors.Is(err, ErrInvalidUpdates) {
			t.Errorf("key %q: err = %v, want ErrInvalidUpdates", key, err)
		}
	}
}

func TestFilterProfileUpdatesRoleScopedKeys(t *testing.T) {
	// A teacher cannot write student columns and vice versa.
	_, err := FilterProfileUpdates(constants.RoleTeacher, map[string]interface{}{
		"student_name": "x",
	})
	if !errors.Is(err, ErrInvalidUpdates) {
		t.Fatalf("err = %v, want ErrInvalidUpdates", err)
	}

	updates, err := FilterProfileUpdates(constants.RoleTeacher, map[string]interface{}{
		"teacher_contact": "08123456789",
	})
	if err != nil {
		t.Fatalf("FilterProfileUpdates: %v", err)
	}
	if updates["teacher_contact"] != "08123456789" {
		t.Errorf("teacher_contact = %v", updates["teacher_contact"])
	}
}

func TestFilterProfileUpdatesAdminHasNoProfile(t *testing.T) {
	_, err := FilterProfileUpdates(constants.RoleAdmin, map[string]interface{}{
		"student_name": "x",
	})
	if !errors.Is(err, ErrInvalidUpdates) {
		t.Fatalf("err = %v, want ErrInvalidUpdates", err)
	}
}

func TestFilterProfileUpdatesInvalidGender(t *testing.T) {
	_, err := FilterProfileUpdates(constants.RoleStudent, map[string]interface{}{
		"student_gender": "Other",
	})
	if err == nil {
		t.Fatal("expected error for invalid gender value")
	}
}

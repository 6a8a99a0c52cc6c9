// file: internals/features/users/auth/service/username_service_test.go
package service

import (
	"testing"
	"time"
)

func TestStudentUsernameBase(t *testing.T) {
	dob := time.Date(2008, 3, 14, 0, 0, 0, 0, time.UTC)
	if got := StudentUsernameBase("John Smith", dob); got != "johnsmith_14032008" {
		t.Errorf("StudentUsernameBase = %q, want %q", got, "johnsmith_14032008")
	}
	if got := StudentUsernameBase("Mary-Ann O'Neil", dob); got != "maryannoneil_14032008" {
		t.Errorf("StudentUsernameBase = %q, want %q", got, "maryannoneil_14032008")
	}
}

func TestTeacherUsernameBase(t *testing.T) {
	dob := time.Date(1985, 11, 2, 0, 0, 0, 0, time.UTC)
	if got := TeacherUsernameBase("Jane Doe", dob); got != "janedoe_19851102" {
		t.Errorf("TeacherUsernameBase = %q, want %q", got, "janedoe_19851102")
	}
}

func TestEnsureUniqueUsername(t *testing.T) {
	taken := map[string]bool{}
	exists := func(u string) (bool, error) { return taken[u], nil }

	got, err := EnsureUniqueUsername("johnsmith_14032008", exists)
	if err != nil {
		t.Fatalf("EnsureUniqueUsername: %v", err)
	}
	if got != "johnsmith_14032008" {
		t.Errorf("free base changed: got %q", got)
	}

	taken["johnsmith_14032008"] = true
	got, err = EnsureUniqueUsername("johnsmith_14032008", exists)
	if err != nil {
		t.Fatalf("EnsureUniqueUsername: %v", err)
	}
	if got != "johnsmith_14032008_1" {
		t.Errorf("first collision: got %q, want %q", got, "johnsmith_14032008_1")
	}

	taken["johnsmith_14032008_1"] = true
	got, err = EnsureUniqueUsername("johnsmith_14032008", exists)
	if err != nil {
		t.Fatalf("EnsureUniqueUsername: %v", err)
	}
	if got != "johnsmith_14032008_2" {
		t.Errorf("second collision: got %q, want %q", got, "johnsmith_14032008_2")
	}
}

// file: internals/features/users/auth/service/password_service_test.go
package service

import (
	"testing"
	"time"
)

func TestGeneratePassword(t *testing.T) {
	cases := []struct {
		name string
		dob  time.Time
		want string
	}{
		{"John Smith", time.Date(2008, 3, 14, 0, 0, 0, 0, time.UTC), "joh08"},
		{"Mary-Ann O'Neil", time.Date(1995, 12, 1, 0, 0, 0, 0, time.UTC), "mar95"},
		{"LI WEI", time.Date(2001, 7, 9, 0, 0, 0, 0, time.UTC), "liw01"},
	}
	for _, tc := range cases {
		if got := GeneratePassword(tc.name, tc.dob); got != tc.want {
			t.Errorf("GeneratePassword(%q, %v) = %q, want %q", tc.name, tc.dob, got, tc.want)
		}
	}
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("joh08")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "joh08" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !ComparePassword("joh08", hash) {
		t.Error("correct password rejected")
	}
	if ComparePassword("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

// file: internals/features/users/auth/service/token_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"studentcrm_backend/internals/configs"
	"studentcrm_backend/internals/constants"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	old := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	defer func() { configs.JWTSecret = old }()

	signed, err := GenerateToken("johnsmith_14032008", constants.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(signed, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse signed token: %v", err)
	}

	if claims["username"] != "johnsmith_14032008" {
		t.Errorf("username claim = %v", claims["username"])
	}
	if claims["role"] != constants.RoleStudent {
		t.Errorf("role claim = %v", claims["role"])
	}

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	if exp-iat != int64(time.Hour.Seconds()) {
		t.Errorf("token lifetime = %ds, want %ds", exp-iat, int64(time.Hour.Seconds()))
	}
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	old := configs.JWTSecret
	configs.JWTSecret = ""
	defer func() { configs.JWTSecret = old }()

	if _, err := GenerateToken("someone", constants.RoleAdmin); err == nil {
		t.Fatal("expected error when the signing secret is unset")
	}
}

package service_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"

	"medpractice/doctor-dashboard/internal/service"
)

func TestNewSessionToken(t *testing.T) {
	plain, err := service.NewSessionToken("", "")
	if err != nil || plain != service.DefaultToken {
		t.Fatalf("no secret = %q, %v", plain, err)
	}
	custom, _ := service.NewSessionToken("", "abc")
	if custom != "abc" {
		t.Errorf("fallback = %q", custom)
	}

	signed, err := service.NewSessionToken("secret", "")
	if err != nil {
		t.Fatalf("signed: %v", err)
	}
	again, _ := service.NewSessionToken("secret", "")
	if signed != again {
		t.Error("token is not stable for the same secret")
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != "1" || claims.Issuer != "doctor-dashboard" {
		t.Errorf("claims = %+v", claims)
	}
}

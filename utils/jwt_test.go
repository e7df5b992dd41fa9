package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "RESTOWNER", "9876543210", "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token, "secret")
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Subject != "42" {
		t.Errorf("sub = %q, want \"42\"", claims.Subject)
	}
	if claims.Role != "RESTOWNER" {
		t.Errorf("role = %q, want RESTOWNER", claims.Role)
	}
	if claims.MobileNumber != "9876543210" {
		t.Errorf("mobileNumber = %q", claims.MobileNumber)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Error("token not valid into the future")
	}
}

func TestParseTokenRejects(t *testing.T) {
	token, err := GenerateToken(42, "CUSTOMER", "9876543210", "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken(token, "wrong"); err == nil {
		t.Error("wrong secret accepted")
	}

	expired, err := GenerateToken(42, "CUSTOMER", "9876543210", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken(expired, "secret"); err == nil {
		t.Error("expired token accepted")
	}

	if _, err := ParseToken("garbage", "secret"); err == nil {
		t.Error("garbage accepted")
	}
}

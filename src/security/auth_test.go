package security

import (
	"testing"
	"time"

	"github.com/JayRichh/steamshare/src/config"
)

func TestTokenRoundTrip(t *testing.T) {
	config.Cfg = &config.AppConfig{AccessTokenExpiry: time.Hour}
	svc := NewAuthService("test-secret-test-secret-test-secret-1234")

	token, err := svc.GenerateToken("76561198000000001")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	steamID, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if steamID != "76561198000000001" {
		t.Fatalf("steamID = %q", steamID)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	config.Cfg = &config.AppConfig{AccessTokenExpiry: time.Hour}
	minted := NewAuthService("test-secret-test-secret-test-secret-1234")
	other := NewAuthService("another-secret-another-secret-another-00")

	token, err := minted.GenerateToken("76561198000000001")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService("test-secret-test-secret-test-secret-1234")
	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected validation to fail for malformed token")
	}
}

func TestGenerateRefreshTokenIsUnique(t *testing.T) {
	svc := NewAuthService("test-secret-test-secret-test-secret-1234")
	a, err := svc.GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	b, err := svc.GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	if a == b || a == "" {
		t.Fatalf("refresh tokens not unique: %q %q", a, b)
	}
}

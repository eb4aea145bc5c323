package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/andrebarceloschagas/sistema/pkg/config"
)

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:            "secret",
		Issuer:            "sistema",
		ExpirationMinutes: 30,
	}
	now := time.Now().UTC()
	userID := uuid.New()

	payload := AccessTokenPayload{
		UserID:       userID,
		IsStaff:      true,
		Capabilities: []string{"can_view_all_anuncios"},
	}

	token, err := MintAccessToken(cfg, now, payload)
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}

	if claims.UserID != userID {
		t.Fatalf("expected user_id %s, got %s", userID, claims.UserID)
	}
	if !claims.IsStaff {
		t.Fatal("staff flag not preserved")
	}
	if len(claims.Capabilities) != 1 || claims.Capabilities[0] != "can_view_all_anuncios" {
		t.Fatalf("capabilities not preserved: %v", claims.Capabilities)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("expected issuer %s, got %s", cfg.Issuer, claims.Issuer)
	}
	if claims.ID == "" {
		t.Fatal("expected a generated jti")
	}

	exp := now.Add(time.Duration(cfg.ExpirationMinutes) * time.Minute)
	diff := claims.ExpiresAt.Sub(exp)
	if diff < 0 {
		diff = -diff
	}
	if diff >= time.Second {
		t.Fatalf("expected exp roughly %v, got %v (diff %v)", exp.UTC(), claims.ExpiresAt.UTC(), diff)
	}
}

func TestParseAccessTokenInvalidSignature(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:            "secret",
		Issuer:            "sistema",
		ExpirationMinutes: 10,
	}
	now := time.Now()

	token, err := MintAccessToken(cfg, now, AccessTokenPayload{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	other := cfg
	other.Secret = "different"
	if _, err := ParseAccessToken(other, token); err == nil {
		t.Fatal("expected signature validation failure")
	}
}

func TestParseAccessTokenWrongIssuer(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:            "secret",
		Issuer:            "sistema",
		ExpirationMinutes: 10,
	}

	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	other := cfg
	other.Issuer = "someone-else"
	if _, err := ParseAccessToken(other, token); err == nil {
		t.Fatal("expected issuer validation failure")
	}
}

func TestMintAccessTokenRequiresConfig(t *testing.T) {
	now := time.Now()
	payload := AccessTokenPayload{UserID: uuid.New()}

	if _, err := MintAccessToken(config.JWTConfig{Issuer: "sistema", ExpirationMinutes: 10}, now, payload); err == nil || !strings.Contains(err.Error(), "secret") {
		t.Fatalf("expected secret error, got %v", err)
	}
	if _, err := MintAccessToken(config.JWTConfig{Secret: "s", ExpirationMinutes: 10}, now, payload); err == nil || !strings.Contains(err.Error(), "issuer") {
		t.Fatalf("expected issuer error, got %v", err)
	}
	if _, err := MintAccessToken(config.JWTConfig{Secret: "s", Issuer: "i"}, now, payload); err == nil || !strings.Contains(err.Error(), "expiration") {
		t.Fatalf("expected expiration error, got %v", err)
	}
	if _, err := MintAccessToken(config.JWTConfig{Secret: "s", Issuer: "i", ExpirationMinutes: 10}, now, AccessTokenPayload{}); err == nil {
		t.Fatal("expected user id error")
	}
}

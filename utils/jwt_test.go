package utils

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateToken("user-1")
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("unexpected user id %q", claims.UserID)
	}
}

func TestParseTokenRejectsTampering(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateToken("user-1")
	if err != nil {
		t.Fatalf("generate token failed: %v", err)
	}

	InitJWT("another-secret")
	if _, err := ParseToken(token); err == nil {
		t.Fatal("token signed with a different key should not parse")
	}
}

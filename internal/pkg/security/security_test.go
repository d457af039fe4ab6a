package security

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	InitJWT("test-secret", 1)
	t.Cleanup(func() { InitJWT("reunite-dev-secret", 24) })

	token, err := GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id = %d, want 42", claims.UserID)
	}
	if ttl := RemainingTTL(claims); ttl <= 0 || ttl > time.Hour {
		t.Fatalf("unexpected remaining ttl %v", ttl)
	}
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	InitJWT("secret-a", 24)
	token, err := GenerateToken(1)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	InitJWT("secret-b", 24)
	t.Cleanup(func() { InitJWT("reunite-dev-secret", 24) })

	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "abc", "a.b.c"} {
		if _, err := ValidateToken(tok); err == nil {
			t.Errorf("ValidateToken(%q) succeeded", tok)
		}
	}
}

func TestExtractSignature(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "h.p.sig", want: "sig"},
		{in: "h.p", wantErr: true},
		{in: "h.p.", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ExtractSignature(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrTokenMalformed) {
				t.Errorf("ExtractSignature(%q) err = %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ExtractSignature(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if strings.Contains(hash, "s3cret!") {
		t.Fatal("hash contains the plain password")
	}
	if err := CheckPasswordHash("s3cret!", hash); err != nil {
		t.Fatalf("CheckPasswordHash: %v", err)
	}
	if err := CheckPasswordHash("wrong", hash); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v", err)
	}
	if _, err := HashPassword(""); err == nil {
		t.Fatal("empty password should not hash")
	}
}

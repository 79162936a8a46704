package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := NewToken("secret", "ops@example.com", RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}

	caller, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if caller.Subject != "ops@example.com" {
		t.Errorf("subject = %q, want %q", caller.Subject, "ops@example.com")
	}
	if !caller.IsAdmin() {
		t.Error("caller should be admin")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := NewToken("secret", "ops@example.com", RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Error("token signed with a different secret should be rejected")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := NewToken("secret", "ops@example.com", RoleAdmin, -time.Minute)
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}

	if _, err := ParseToken("secret", token); err == nil {
		t.Error("expired token should be rejected")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("secret", "not-a-token"); err == nil {
		t.Error("malformed token should be rejected")
	}
}

func TestIsAdmin(t *testing.T) {
	var nilCaller *Caller
	if nilCaller.IsAdmin() {
		t.Error("nil caller should not be admin")
	}

	if (&Caller{Role: "editor"}).IsAdmin() {
		t.Error("non-admin role should not be admin")
	}

	if !(&Caller{Role: RoleAdmin}).IsAdmin() {
		t.Error("admin role should be admin")
	}
}

package utils

import (
	"testing"
	"time"
)

func TestSessionIssueParse(t *testing.T) {
	sessions := NewSessionManager("test-secret", "HS256", 7*24*time.Hour)

	token, issued, err := sessions.Issue(42, "alice")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if issued.ID == "" {
		t.Fatalf("expected session ID to be set")
	}

	claims, err := sessions.Parse(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != 42 || claims.Username != "alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.ID != issued.ID {
		t.Fatalf("session ID mismatch")
	}
}

func TestSessionParseRejectsWrongSecret(t *testing.T) {
	sessions := NewSessionManager("test-secret", "HS256", time.Hour)
	other := NewSessionManager("other-secret", "HS256", time.Hour)

	token, _, err := sessions.Issue(1, "alice")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := other.Parse(token); err == nil {
		t.Fatalf("token accepted with wrong secret")
	}
}

func TestSessionParseRejectsExpired(t *testing.T) {
	sessions := NewSessionManager("test-secret", "HS256", -time.Minute)

	token, _, err := sessions.Issue(1, "alice")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := sessions.Parse(token); err == nil {
		t.Fatalf("expired token accepted")
	}
}

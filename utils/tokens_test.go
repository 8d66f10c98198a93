package utils

import (
	"testing"
	"time"
)

func TestServiceTokenRoundTrip(t *testing.T) {
	m, err := NewManager("test-signing-key")
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	token, err := m.NewServiceToken("uid-123", time.Minute)
	if err != nil {
		t.Fatalf("NewServiceToken: %v", err)
	}

	subject, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if subject != "uid-123" {
		t.Errorf("subject = %q, want %q", subject, "uid-123")
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	m1, _ := NewManager("key-one")
	m2, _ := NewManager("key-two")

	token, err := m1.NewServiceToken("uid-123", time.Minute)
	if err != nil {
		t.Fatalf("NewServiceToken: %v", err)
	}
	if _, err := m2.Parse(token); err == nil {
		t.Error("expected parse with wrong key to fail")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m, _ := NewManager("test-signing-key")
	token, err := m.NewServiceToken("uid-123", -time.Minute)
	if err != nil {
		t.Fatalf("NewServiceToken: %v", err)
	}
	if _, err := m.Parse(token); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestNewManagerRequiresKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Error("expected error for empty signing key")
	}
}

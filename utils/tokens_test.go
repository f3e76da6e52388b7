package utils

import (
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	manager, err := NewManager("test-signing-key")
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}

	token, err := manager.NewAccessToken(42, "business", time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken returned error: %v", err)
	}

	userID, role, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected user id 42, got %d", userID)
	}
	if role != "business" {
		t.Errorf("expected role 'business', got %q", role)
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	manager, _ := NewManager("key-one")
	other, _ := NewManager("key-two")

	token, err := manager.NewAccessToken(1, "customer", time.Hour)
	if err != nil {
		t.Fatalf("NewAccessToken returned error: %v", err)
	}

	if _, _, err := other.Parse(token); err == nil {
		t.Fatal("expected token signed with a different key to be rejected")
	}
}

func TestNewManagerRejectsEmptyKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Fatal("expected error for empty signing key")
	}
}

func TestNewRefreshToken(t *testing.T) {
	manager, _ := NewManager("test-signing-key")

	first, err := manager.NewRefreshToken()
	if err != nil {
		t.Fatalf("NewRefreshToken returned error: %v", err)
	}
	if len(first) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(first))
	}

	second, err := manager.NewRefreshToken()
	if err != nil {
		t.Fatalf("NewRefreshToken returned error: %v", err)
	}
	if first == second {
		t.Fatal("expected refresh tokens to differ")
	}
}

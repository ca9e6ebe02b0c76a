package utils

import (
	"testing"
	"time"
)

func TestPasswordRoundTrip(t *testing.T) {
	// Minimum bcrypt cost keeps the test fast.
	hash, err := HashPassword("correct horse battery staple", 4)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !VerifyPassword(hash, "correct horse battery staple") {
		t.Error("VerifyPassword rejected the right password")
	}
	if VerifyPassword(hash, "wrong password") {
		t.Error("VerifyPassword accepted the wrong password")
	}
}

func TestHashRefreshRaw(t *testing.T) {
	a := HashRefreshRaw("token-a")
	if a != HashRefreshRaw("token-a") {
		t.Error("hash is not deterministic")
	}
	if a == HashRefreshRaw("token-b") {
		t.Error("distinct tokens produced the same hash")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
}

func TestNewRefreshToken(t *testing.T) {
	first, err := NewRefreshToken(30)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	second, err := NewRefreshToken(30)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if first.Raw == second.Raw {
		t.Error("two refresh tokens share the same raw value")
	}
	if len(first.Raw) != 96 {
		t.Errorf("raw length = %d, want 96 hex chars", len(first.Raw))
	}
	if !first.Exp.After(time.Now().UTC().Add(29 * 24 * time.Hour)) {
		t.Errorf("expiry %v is sooner than the requested 30 days", first.Exp)
	}
}

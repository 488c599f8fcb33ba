package helpers

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("super-secret", 0)

	tok, err := m.Generate("amy")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	username, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if username != "amy" {
		t.Fatalf("username mismatch: got %q want %q", username, "amy")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager("right-secret", 0).Generate("bob")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = NewTokenManager("wrong-secret", 0).Parse(tok)
	if err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestParse_Expired(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("secret", -1*time.Second)
	tok, err := m.Generate("amy")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	if _, err := m.Parse(tok); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParse_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManager("k", 0).Parse("not.a.jwt")
	if err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

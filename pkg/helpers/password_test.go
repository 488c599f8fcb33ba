package helpers

import (
	"strings"
	"testing"
)

func TestHashAndComparePassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("pw123456", 4)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "pw123456" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}

	if !CompareHashAndPassword(hash, "pw123456") {
		t.Fatalf("expected matching password to compare true")
	}
	if CompareHashAndPassword(hash, "wrongpass") {
		t.Fatalf("expected wrong password to compare false")
	}
}

func TestHashPassword_CostOutOfRange(t *testing.T) {
	t.Parallel()

	// Out-of-range cost falls back to the default instead of failing.
	hash, err := HashPassword("pw123456", 99)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !CompareHashAndPassword(hash, "pw123456") {
		t.Fatalf("expected hash produced with fallback cost to verify")
	}
}

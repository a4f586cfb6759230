package security

import (
	"testing"
)

func TestHasher_HashAndCompare(t *testing.T) {
	h := NewHasher(4)
	password := []byte("secret123")
	hash, err := h.Hash(password)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if hash == "" {
		t.Fatal("Hash returned empty")
	}
	if err := h.Compare(hash, password); err != nil {
		t.Fatalf("Compare: %v", err)
	}
}

func TestHasher_CompareWrongPassword(t *testing.T) {
	h := NewHasher(4)
	hash, _ := h.Hash([]byte("secret123"))
	if err := h.Compare(hash, []byte("wrong")); err == nil {
		t.Fatal("Compare with wrong password should fail")
	}
}

func TestHasher_CompareDifferentHash(t *testing.T) {
	h := NewHasher(4)
	other, _ := h.Hash([]byte("other-password"))
	if err := h.Compare(other, []byte("secret123")); err == nil {
		t.Fatal("Compare against a hash of a different password should fail")
	}
}

func TestHasher_Cost(t *testing.T) {
	h := NewHasher(10)
	if h.Cost != 10 {
		t.Errorf("Cost want 10, got %d", h.Cost)
	}
	h0 := NewHasher(0)
	if h0.Cost < 4 {
		t.Errorf("zero cost should be clamped to at least MinCost, got %d", h0.Cost)
	}
	hBig := NewHasher(99)
	if hBig.Cost > 31 {
		t.Errorf("oversized cost should be clamped to MaxCost, got %d", hBig.Cost)
	}
}

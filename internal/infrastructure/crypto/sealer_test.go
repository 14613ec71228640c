package crypto

import (
	"errors"
	"testing"
)

func TestSealer_RoundTrip(t *testing.T) {
	s, err := NewSealer("top-secret")
	if err != nil {
		t.Fatalf("NewSealer: %v", err)
	}

	sealed, err := s.Seal("eyJhbGciOi.token", "ctx-1")
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if sealed == "eyJhbGciOi.token" {
		t.Fatalf("expected ciphertext, got plaintext")
	}

	plain, err := s.Open(sealed, "ctx-1")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if plain != "eyJhbGciOi.token" {
		t.Fatalf("unexpected plaintext: %q", plain)
	}
}

func TestSealer_NonceIsRandom(t *testing.T) {
	s, _ := NewSealer("top-secret")
	a, _ := s.Seal("abc", "ctx")
	b, _ := s.Seal("abc", "ctx")
	if a == b {
		t.Fatalf("expected distinct ciphertexts for the same input")
	}
}

func TestSealer_RejectsWrongContext(t *testing.T) {
	s, _ := NewSealer("top-secret")
	sealed, _ := s.Seal("abc", "ctx-1")

	if _, err := s.Open(sealed, "ctx-2"); err == nil {
		t.Fatalf("expected failure when opening with another context id")
	}
}

func TestSealer_RejectsOtherSecret(t *testing.T) {
	a, _ := NewSealer("secret-a")
	b, _ := NewSealer("secret-b")
	sealed, _ := a.Seal("abc", "ctx")

	if _, err := b.Open(sealed, "ctx"); err == nil {
		t.Fatalf("expected failure with a different secret")
	}
}

func TestSealer_Malformed(t *testing.T) {
	s, _ := NewSealer("top-secret")

	if _, err := s.Open("%%%", "ctx"); !errors.Is(err, ErrMalformedSealed) {
		t.Fatalf("expected ErrMalformedSealed, got %v", err)
	}
	if _, err := s.Open("c2hvcnQ", "ctx"); !errors.Is(err, ErrMalformedSealed) {
		t.Fatalf("expected ErrMalformedSealed for short input, got %v", err)
	}
}

func TestNewSealer_EmptySecret(t *testing.T) {
	if _, err := NewSealer(""); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

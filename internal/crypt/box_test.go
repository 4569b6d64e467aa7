package crypt

import (
	"errors"
	"strings"
	"testing"
)

func newTestBox(t *testing.T) *Box {
	t.Helper()
	encoded, err := GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}
	key, err := ParseKey(encoded)
	if err != nil {
		t.Fatalf("ParseKey failed: %v", err)
	}
	b, err := New(key)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return b
}

func TestBox_EncryptDecrypt(t *testing.T) {
	b := newTestBox(t)

	cipher, err := b.Encrypt("deepl-key:fx")
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if !strings.HasPrefix(cipher, "v1:") {
		t.Errorf("expected v1 prefix, got %q", cipher)
	}
	if strings.Contains(cipher, "deepl-key") {
		t.Error("ciphertext leaks plaintext")
	}

	plain, err := b.Decrypt(cipher)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if plain != "deepl-key:fx" {
		t.Errorf("expected round trip, got %q", plain)
	}
}

func TestBox_EncryptUsesFreshNonce(t *testing.T) {
	b := newTestBox(t)

	c1, _ := b.Encrypt("same")
	c2, _ := b.Encrypt("same")
	if c1 == c2 {
		t.Error("expected different ciphertexts for the same plaintext")
	}
}

func TestBox_Decrypt_WrongKey(t *testing.T) {
	cipher, _ := newTestBox(t).Encrypt("secret")

	if _, err := newTestBox(t).Decrypt(cipher); err == nil {
		t.Error("expected error with a different key")
	}
}

func TestBox_Decrypt_Malformed(t *testing.T) {
	b := newTestBox(t)

	for _, in := range []string{"plain", "v1:!!!", "v1:AAAA"} {
		if _, err := b.Decrypt(in); !errors.Is(err, ErrMalformed) {
			t.Errorf("input %q: expected ErrMalformed, got %v", in, err)
		}
	}
}

func TestParseKey_Invalid(t *testing.T) {
	if _, err := ParseKey("not base64"); err == nil {
		t.Error("expected decode error")
	}
	if _, err := ParseKey("c2hvcnQ="); err == nil {
		t.Error("expected length error")
	}
}

func TestNew_InvalidKey(t *testing.T) {
	if _, err := New([]byte("short")); err == nil {
		t.Error("expected error for short key")
	}
}

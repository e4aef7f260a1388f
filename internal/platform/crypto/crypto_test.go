package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	key := hex.EncodeToString(bytes.Repeat([]byte{0xAB}, 32))
	svc, err := New(key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !svc.Configured() {
		t.Fatal("expected service to be configured")
	}

	plain := []byte("net pay 80000.00")
	sealed, err := svc.Encrypt(plain)
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	if bytes.Equal(sealed, plain) {
		t.Fatal("ciphertext should differ from plaintext")
	}

	opened, err := svc.Decrypt(sealed)
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if !bytes.Equal(opened, plain) {
		t.Fatal("round trip mismatch")
	}
}

func TestUnconfiguredPassthrough(t *testing.T) {
	svc, err := New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Configured() {
		t.Fatal("empty key should not configure encryption")
	}
	data := []byte("plain")
	out, err := svc.Encrypt(data)
	if err != nil || !bytes.Equal(out, data) {
		t.Fatalf("expected passthrough, got %v %v", out, err)
	}
}

func TestBadKey(t *testing.T) {
	if _, err := New("deadbeef"); err == nil {
		t.Fatal("short key should be rejected")
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"testing"
)

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"12 bytes", 12, 24},
		{"16 bytes", 16, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			// Verify it's valid hex
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	// Test randomness - two IDs should be different
	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestGenerateRequestKey(t *testing.T) {
	tests := []struct {
		name      string
		requestID string
		salt      string
	}{
		{"standard", "request123", "secret-salt"},
		{"empty request id", "", "salt"},
		{"empty salt", "request456", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateRequestKey(tt.requestID, tt.salt)

			if key == "" {
				t.Error("GenerateRequestKey() returned empty string")
			}

			// Should be deterministic
			key2 := GenerateRequestKey(tt.requestID, tt.salt)
			if key != key2 {
				t.Error("GenerateRequestKey() is not deterministic")
			}
		})
	}

	// Different requests yield different keys
	if GenerateRequestKey("a", "salt") == GenerateRequestKey("b", "salt") {
		t.Error("GenerateRequestKey() collided across request IDs")
	}
	// Different salts yield different keys
	if GenerateRequestKey("a", "salt1") == GenerateRequestKey("a", "salt2") {
		t.Error("GenerateRequestKey() collided across salts")
	}
}

func TestValidateRequestKey(t *testing.T) {
	requestID := "request789"
	salt := "test-salt"
	key := GenerateRequestKey(requestID, salt)

	if err := ValidateRequestKey(requestID, key, salt); err != nil {
		t.Errorf("ValidateRequestKey() rejected a valid key: %v", err)
	}

	if err := ValidateRequestKey(requestID, "wrong-key", salt); err != ErrInvalidRequestKey {
		t.Errorf("ValidateRequestKey() = %v, want ErrInvalidRequestKey", err)
	}

	if err := ValidateRequestKey("other-request", key, salt); err != ErrInvalidRequestKey {
		t.Errorf("ValidateRequestKey() accepted a key for the wrong request")
	}

	if err := ValidateRequestKey(requestID, key, "other-salt"); err != ErrInvalidRequestKey {
		t.Errorf("ValidateRequestKey() accepted a key under the wrong salt")
	}
}

func TestHashIP(t *testing.T) {
	hash := HashIP("203.0.113.7", "salt")

	if len(hash) != 16 {
		t.Errorf("HashIP() length = %d, want 16", len(hash))
	}

	// Deterministic
	if hash != HashIP("203.0.113.7", "salt") {
		t.Error("HashIP() is not deterministic")
	}

	// Different IPs hash differently
	if hash == HashIP("203.0.113.8", "salt") {
		t.Error("HashIP() collided across IPs")
	}

	// Salt changes the hash
	if hash == HashIP("203.0.113.7", "other-salt") {
		t.Error("HashIP() ignored the salt")
	}
}

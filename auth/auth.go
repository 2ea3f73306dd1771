// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidRequestKey = errors.New("invalid request key")

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateRequestKey creates an HMAC-based owner key for a quote request.
// The key is returned once at submission and gates accept/reject/cancel.
// This is deterministic and verifiable
func GenerateRequestKey(requestID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(requestID))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateRequestKey checks if the provided key is valid for the request
func ValidateRequestKey(requestID, requestKey, salt string) error {
	expected := GenerateRequestKey(requestID, salt)
	if !hmac.Equal([]byte(requestKey), []byte(expected)) {
		return ErrInvalidRequestKey
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}

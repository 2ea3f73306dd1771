// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides request key generation and validation.

# Request Keys

Request keys use HMAC-SHA256 to create deterministic, verifiable keys:

	requestKey := auth.GenerateRequestKey(requestID, salt)
	err := auth.ValidateRequestKey(requestID, requestKey, salt)

The key is URL-safe base64 encoded without padding. Since it's deterministic,
the same request ID and salt always produce the same key. This allows
validation without storing the key in the database. The key is returned once
at submission and gates cancel, accept, and reject.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters

# IP Hashing

For privacy-preserving audit fields on vendor responses:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth

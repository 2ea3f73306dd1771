// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Quote requests
CREATE TABLE IF NOT EXISTS quote_request (
    id TEXT PRIMARY KEY,
    submitter_id TEXT NOT NULL,
    property_type TEXT NOT NULL CHECK (property_type IN ('residential', 'commercial', 'industrial')),
    address TEXT NOT NULL,
    city TEXT NOT NULL,
    monthly_bill_amount BIGINT NOT NULL CHECK (monthly_bill_amount > 0),
    budget_range TEXT,
    status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'active', 'completed', 'cancelled')),
    submitted_at TIMESTAMP NOT NULL,
    cancelled_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_quote_request_submitter ON quote_request(submitter_id);
CREATE INDEX IF NOT EXISTS idx_quote_request_status ON quote_request(status);

-- Vendors
CREATE TABLE IF NOT EXISTS vendor (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    rating REAL NOT NULL DEFAULT 0 CHECK (rating >= 0 AND rating <= 5),
    created_at TIMESTAMP NOT NULL,
    last_seen_at TIMESTAMP NOT NULL
);

-- Vendor responses (append-only; one per vendor per request)
CREATE TABLE IF NOT EXISTS vendor_response (
    id TEXT PRIMARY KEY,
    request_id TEXT NOT NULL REFERENCES quote_request(id) ON DELETE CASCADE,
    vendor_id TEXT NOT NULL REFERENCES vendor(id),
    vendor_name TEXT NOT NULL,
    vendor_rating REAL NOT NULL,
    system_size_kw REAL NOT NULL CHECK (system_size_kw > 0),
    total_price BIGINT NOT NULL CHECK (total_price > 0),
    installment_months INTEGER NOT NULL,
    monthly_payment BIGINT NOT NULL,
    warranty_years INTEGER,
    installation_weeks INTEGER,
    status TEXT NOT NULL DEFAULT 'submitted' CHECK (status IN ('submitted', 'accepted', 'rejected')),
    submitted_at TIMESTAMP NOT NULL,
    valid_until TIMESTAMP,
    ip_hash TEXT,
    user_agent TEXT,
    UNIQUE (request_id, vendor_id)
);

CREATE INDEX IF NOT EXISTS idx_vendor_response_request_id ON vendor_response(request_id);
CREATE INDEX IF NOT EXISTS idx_vendor_response_vendor_id ON vendor_response(vendor_id);
CREATE INDEX IF NOT EXISTS idx_vendor_response_status ON vendor_response(request_id, status);
`

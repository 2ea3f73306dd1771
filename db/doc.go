// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and demo seeding.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL avoids driver-specific defaults so the same schema works on both
Postgres and sqlite.

# Tables

The schema includes:

  - quote_request: Customer request with lifecycle state
  - vendor: Registered installer identity
  - vendor_response: One offer per vendor per request

# Relationships

	quote_request 1──* vendor_response
	vendor 1──* vendor_response

vendor_response carries a UNIQUE (request_id, vendor_id) constraint: a
vendor gets one shot at each request.

# Indexes

Performance indexes on:

  - quote_request.status
  - quote_request.submitter_id
  - vendor_response.request_id
  - vendor_response.vendor_id

# Demo Data

SeedDemoData inserts two vendors and two requests (one already quoted) for
local development. Wired to the -seed flag; never runs by default.
*/
package db

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the SolarMatch API server.

SolarMatch is a solar installation marketplace: customers submit quote
requests, installers respond with offers, and the customer accepts exactly
one. Accepted offers can be financed with zero-interest installment plans
or paid in cash at a discount.

# Starting the Server

The server reads configuration from a .env file, environment variables,
or CLI flags:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3410 -t sqlite -d solarmatch.db

# Configuration

Required settings:

  - DATABASE_URL (-d): Database connection string or sqlite file path
  - REQUEST_KEY_SALT (--request-salt): Secret for request key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3410)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - SEED_DEMO_DATA (-seed): Insert demo vendors and requests on startup

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (requests, responses, lifecycle, vendors, plans)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, store error mapping
  - store: Quote lifecycle engine over database/sql
  - planner: Installment plan and discount arithmetic
  - models: Request/response types
  - auth: Request key generation and validation
  - db: Schema creation and demo seeding
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

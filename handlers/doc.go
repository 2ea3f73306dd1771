// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the SolarMatch API.

# Handler Types

Each handler is a struct built over the store and config:

  - RequestHandler: Request submission, listing, cancellation
  - ResponseHandler: Vendor offers against a request
  - LifecycleHandler: Accept and reject decisions
  - VendorHandler: Vendor registration and self-service reads
  - PlanHandler: Installment plan preview (pure computation)

Handlers are created via constructor functions:

	requestHandler := handlers.NewRequestHandler(st, cfg)

# Request Lifecycle

Requests progress pending → active → completed, or end at cancelled:

	POST /requests                → Submit (returns request_key)
	POST /requests/{id}/responses → Attach (first offer activates)
	POST /requests/{id}/responses/{rid}/accept → Accept (completes)
	POST /requests/{id}/responses/{rid}/reject → Reject (stays active)
	POST /requests/{id}/cancel    → Cancel (pending/active only)

Owner operations (cancel, accept, reject) require the X-Request-Key header.

# Vendor Flow

Vendors register once and quote against open requests:

	POST /vendors/register    → Register (returns vendor_id)
	GET  /requests/available  → GetAvailable (open, not yet quoted)
	GET  /vendors/me          → GetMe
	GET  /vendors/me/responses → MyResponses

Vendor operations require the X-Vendor-ID header.

# Financing

Acceptance takes an optional payment selection. A BNPL selection returns
the installment plan inline; POST /plans/preview computes the same
breakdown without touching any request.
*/
package handlers

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the SolarMatch API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Customer operations (owner actions require X-Request-Key):

	POST /requests                             - Submit request
	GET  /requests/mine                        - List own requests
	POST /requests/{id}/cancel                 - Cancel request
	POST /requests/{id}/responses/{rid}/accept - Accept an offer
	POST /requests/{id}/responses/{rid}/reject - Reject an offer

Vendor operations (require X-Vendor-ID):

	GET  /requests/available      - Open requests not yet quoted
	POST /requests/{id}/responses - Attach an offer
	POST /vendors/register        - Register vendor
	GET  /vendors/me              - Vendor info
	GET  /vendors/me/responses    - Vendor's offers

Shared reads (public):

	GET /requests/{id}           - Request with responses
	GET /requests/{id}/responses - Responses only

Financing:

	POST /plans/preview - Installment plan preview

# Handler Initialization

The router builds the store once and injects it into each handler:

	st := store.New(db)
	requestHandler := handlers.NewRequestHandler(st, cfg)

All handlers receive the store and configuration.
*/
package router

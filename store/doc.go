// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the quote lifecycle engine over database/sql.

# Error Kinds

Every operation returns one of three sentinel error kinds (or nil):

	store.ErrValidation   // bad input, nothing was written
	store.ErrNotFound     // the named request/response/vendor does not exist
	store.ErrInvalidState // the transition is not legal from the current state

Handlers map these onto 400, 404, and 409 via middleware.StoreErrorResponse.

# Request Lifecycle

Requests progress pending → active → completed, or terminate at cancelled:

	req, err := st.SubmitRequest(input)          // pending
	resp, err := st.AttachResponse(...)          // first response promotes to active
	resp, status, err := st.AcceptResponse(...)  // completed
	req, err := st.CancelRequest(id)             // cancelled (pending/active only)

# Guarded Transitions

All state changes are compare-and-swap UPDATEs inside transactions:

	UPDATE vendor_response SET status = 'accepted'
	WHERE id = $1 AND status = 'submitted'

A zero row count means another caller won the race; the loser gets
ErrInvalidState. This is what enforces the one-accepted-response rule
under concurrency without SELECT FOR UPDATE.

# Visibility

AvailableRequests returns open (pending or active) requests a vendor has
not yet quoted, newest first, with system size and budget estimates
computed by the planner package.
*/
package store

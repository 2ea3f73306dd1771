// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/solarmatch/models"
)

// AcceptResponse marks one response accepted and completes its request.
// Sibling responses are left untouched; they stay submitted until the
// customer rejects them explicitly. A second accept on the same request
// or response fails with ErrInvalidState - accepting is not idempotent,
// so a double payment can never be initiated.
func (s *Store) AcceptResponse(requestID, responseID string) (models.VendorResponse, string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return models.VendorResponse{}, "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	response, _, err := loadTransitionTargets(tx, requestID, responseID)
	if err != nil {
		return models.VendorResponse{}, "", err
	}

	if response.ValidUntil != nil && response.ValidUntil.Before(time.Now()) {
		return models.VendorResponse{}, "", fmt.Errorf("%w: offer expired at %s", ErrInvalidState, response.ValidUntil.Format(time.RFC3339))
	}

	// Compare-and-swap on status: under concurrent accepts exactly one
	// of these updates reports a changed row.
	result, err := tx.Exec(`
		UPDATE vendor_response SET status = $1 WHERE id = $2 AND status = $3
	`, models.ResponseAccepted, responseID, models.ResponseSubmitted)
	if err != nil {
		return models.VendorResponse{}, "", fmt.Errorf("failed to accept response: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return models.VendorResponse{}, "", fmt.Errorf("%w: response is not open for acceptance", ErrInvalidState)
	}

	result, err = tx.Exec(`
		UPDATE quote_request SET status = $1 WHERE id = $2 AND status IN ($3, $4)
	`, models.StatusCompleted, requestID, models.StatusPending, models.StatusActive)
	if err != nil {
		return models.VendorResponse{}, "", fmt.Errorf("failed to complete request: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return models.VendorResponse{}, "", fmt.Errorf("%w: request is no longer open", ErrInvalidState)
	}

	if err := tx.Commit(); err != nil {
		return models.VendorResponse{}, "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	response.Status = models.ResponseAccepted
	return response, models.StatusCompleted, nil
}

// RejectResponse marks one response rejected. The request stays active even
// when no open offers remain, since historical responses are retained.
func (s *Store) RejectResponse(requestID, responseID string) (models.VendorResponse, string, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return models.VendorResponse{}, "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	response, requestStatus, err := loadTransitionTargets(tx, requestID, responseID)
	if err != nil {
		return models.VendorResponse{}, "", err
	}

	result, err := tx.Exec(`
		UPDATE vendor_response SET status = $1 WHERE id = $2 AND status = $3
	`, models.ResponseRejected, responseID, models.ResponseSubmitted)
	if err != nil {
		return models.VendorResponse{}, "", fmt.Errorf("failed to reject response: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return models.VendorResponse{}, "", fmt.Errorf("%w: response is not open for rejection", ErrInvalidState)
	}

	if err := tx.Commit(); err != nil {
		return models.VendorResponse{}, "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	response.Status = models.ResponseRejected
	return response, requestStatus, nil
}

// loadTransitionTargets fetches the response and its request's status inside
// the transaction, enforcing the shared accept/reject preconditions:
// both must exist, the response must belong to the request, the response
// must still be submitted, and the request must be open.
func loadTransitionTargets(tx *sql.Tx, requestID, responseID string) (models.VendorResponse, string, error) {
	row := tx.QueryRow(`
		SELECT `+responseColumns+`
		FROM vendor_response
		WHERE id = $1 AND request_id = $2
	`, responseID, requestID)

	response, err := scanResponse(row)
	if err == sql.ErrNoRows {
		// Unknown response, or unknown request entirely
		var exists int
		if lookupErr := tx.QueryRow(`SELECT 1 FROM quote_request WHERE id = $1`, requestID).Scan(&exists); lookupErr == sql.ErrNoRows {
			return models.VendorResponse{}, "", fmt.Errorf("%w: request %s", ErrNotFound, requestID)
		}
		return models.VendorResponse{}, "", fmt.Errorf("%w: response %s", ErrNotFound, responseID)
	}
	if err != nil {
		return models.VendorResponse{}, "", fmt.Errorf("failed to query response: %w", err)
	}

	var requestStatus string
	err = tx.QueryRow(`SELECT status FROM quote_request WHERE id = $1`, requestID).Scan(&requestStatus)
	if err != nil {
		return models.VendorResponse{}, "", fmt.Errorf("failed to query request: %w", err)
	}

	if requestStatus == models.StatusCompleted || requestStatus == models.StatusCancelled {
		return models.VendorResponse{}, "", fmt.Errorf("%w: request is %s", ErrInvalidState, requestStatus)
	}
	if response.Status != models.ResponseSubmitted {
		return models.VendorResponse{}, "", fmt.Errorf("%w: response is already %s", ErrInvalidState, response.Status)
	}

	return response, requestStatus, nil
}

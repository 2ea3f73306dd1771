// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/solarmatch/auth"
	"github.com/danielhkuo/solarmatch/models"
)

const requestColumns = `r.id, r.submitter_id, r.property_type, r.address, r.city,
	r.monthly_bill_amount, r.budget_range, r.status, r.submitted_at, r.cancelled_at,
	(SELECT COUNT(*) FROM vendor_response vr WHERE vr.request_id = r.id)`

// SubmitRequest validates and stores a new quote request. The request starts
// in pending status with an empty response list.
func (s *Store) SubmitRequest(input models.SubmitRequestRequest) (models.QuoteRequest, error) {
	if input.SubmitterID == "" {
		return models.QuoteRequest{}, validationf("submitter_id is required")
	}
	if !models.IsValidPropertyType(input.PropertyType) {
		return models.QuoteRequest{}, validationf("property_type must be one of: residential, commercial, industrial")
	}
	if input.Address == "" {
		return models.QuoteRequest{}, validationf("address is required")
	}
	if input.City == "" {
		return models.QuoteRequest{}, validationf("city is required")
	}
	if input.MonthlyBillAmount <= 0 {
		return models.QuoteRequest{}, validationf("monthly_bill_amount must be positive")
	}

	requestID, err := auth.GenerateID(16)
	if err != nil {
		return models.QuoteRequest{}, err
	}

	request := models.QuoteRequest{
		ID:                requestID,
		SubmitterID:       input.SubmitterID,
		PropertyType:      input.PropertyType,
		Address:           input.Address,
		City:              input.City,
		MonthlyBillAmount: input.MonthlyBillAmount,
		BudgetRange:       input.BudgetRange,
		Status:            models.StatusPending,
		SubmittedAt:       time.Now(),
	}

	_, err = s.db.Exec(`
		INSERT INTO quote_request (id, submitter_id, property_type, address, city, monthly_bill_amount, budget_range, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, request.ID, request.SubmitterID, request.PropertyType, request.Address, request.City,
		request.MonthlyBillAmount, request.BudgetRange, request.Status, request.SubmittedAt)

	if err != nil {
		return models.QuoteRequest{}, fmt.Errorf("failed to insert quote request: %w", err)
	}

	return request, nil
}

// RequestByID returns a single request, or ErrNotFound.
func (s *Store) RequestByID(requestID string) (models.QuoteRequest, error) {
	row := s.db.QueryRow(`
		SELECT `+requestColumns+`
		FROM quote_request r
		WHERE r.id = $1
	`, requestID)

	request, err := scanRequest(row)
	if err == sql.ErrNoRows {
		return models.QuoteRequest{}, fmt.Errorf("%w: request %s", ErrNotFound, requestID)
	}
	if err != nil {
		return models.QuoteRequest{}, fmt.Errorf("failed to query request: %w", err)
	}
	return request, nil
}

// RequestsBySubmitter returns the submitter's requests, newest first.
func (s *Store) RequestsBySubmitter(submitterID string) ([]models.QuoteRequest, error) {
	rows, err := s.db.Query(`
		SELECT `+requestColumns+`
		FROM quote_request r
		WHERE r.submitter_id = $1
		ORDER BY r.submitted_at DESC, r.id
	`, submitterID)
	if err != nil {
		return nil, fmt.Errorf("failed to query requests: %w", err)
	}
	defer rows.Close()

	requests := []models.QuoteRequest{}
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

// CancelRequest moves a pending or active request to cancelled, closing it
// to new responses. Terminal requests cannot be cancelled again.
func (s *Store) CancelRequest(requestID string) (models.QuoteRequest, error) {
	result, err := s.db.Exec(`
		UPDATE quote_request
		SET status = $1, cancelled_at = $2
		WHERE id = $3 AND status IN ($4, $5)
	`, models.StatusCancelled, time.Now(), requestID, models.StatusPending, models.StatusActive)
	if err != nil {
		return models.QuoteRequest{}, fmt.Errorf("failed to cancel request: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.QuoteRequest{}, err
	}
	if affected == 0 {
		// Distinguish a missing request from one already closed
		request, err := s.RequestByID(requestID)
		if err != nil {
			return models.QuoteRequest{}, err
		}
		return models.QuoteRequest{}, fmt.Errorf("%w: request is %s", ErrInvalidState, request.Status)
	}

	return s.RequestByID(requestID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (models.QuoteRequest, error) {
	var request models.QuoteRequest
	var budgetRange sql.NullString
	err := row.Scan(
		&request.ID, &request.SubmitterID, &request.PropertyType, &request.Address,
		&request.City, &request.MonthlyBillAmount, &budgetRange, &request.Status,
		&request.SubmittedAt, &request.CancelledAt, &request.QuotesReceived,
	)
	if err != nil {
		return models.QuoteRequest{}, err
	}
	request.BudgetRange = budgetRange.String
	return request, nil
}

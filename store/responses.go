// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/solarmatch/auth"
	"github.com/danielhkuo/solarmatch/models"
	"github.com/danielhkuo/solarmatch/planner"
)

const responseColumns = `id, request_id, vendor_id, vendor_name, vendor_rating, system_size_kw,
	total_price, installment_months, monthly_payment, warranty_years, installation_weeks,
	status, submitted_at, valid_until, ip_hash, user_agent`

// defaultValidity is how long an offer stands when the vendor gives no
// explicit valid_until.
const defaultValidity = 30 * 24 * time.Hour

// AttachResponse appends a vendor's priced offer to an open request.
// The monthly payment is derived, never taken from the caller. A first
// response promotes the request from pending to active.
func (s *Store) AttachResponse(requestID string, vendor models.Vendor, input models.AttachResponseRequest, ipHash, userAgent *string) (models.VendorResponse, error) {
	if input.SystemSizeKw <= 0 {
		return models.VendorResponse{}, validationf("system_size_kw must be positive")
	}
	if input.TotalPrice <= 0 {
		return models.VendorResponse{}, validationf("total_price must be positive")
	}

	monthly, err := planner.MonthlyPayment(input.TotalPrice, input.InstallmentMonths)
	if err != nil {
		return models.VendorResponse{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	now := time.Now()
	validUntil := now.Add(defaultValidity)
	if input.ValidUntil != nil {
		if !input.ValidUntil.After(now) {
			return models.VendorResponse{}, validationf("valid_until must be in the future")
		}
		validUntil = *input.ValidUntil
	}

	responseID, err := auth.GenerateID(12)
	if err != nil {
		return models.VendorResponse{}, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.VendorResponse{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Responses may only be added to open requests
	var status string
	err = tx.QueryRow(`SELECT status FROM quote_request WHERE id = $1`, requestID).Scan(&status)
	if err == sql.ErrNoRows {
		return models.VendorResponse{}, fmt.Errorf("%w: request %s", ErrNotFound, requestID)
	}
	if err != nil {
		return models.VendorResponse{}, fmt.Errorf("failed to query request: %w", err)
	}
	if status == models.StatusCompleted || status == models.StatusCancelled {
		return models.VendorResponse{}, fmt.Errorf("%w: request is %s", ErrInvalidState, status)
	}

	response := models.VendorResponse{
		ID:                responseID,
		RequestID:         requestID,
		VendorID:          vendor.ID,
		VendorName:        vendor.Name,
		VendorRating:      vendor.Rating,
		SystemSizeKw:      input.SystemSizeKw,
		TotalPrice:        input.TotalPrice,
		InstallmentMonths: input.InstallmentMonths,
		MonthlyPayment:    monthly,
		WarrantyYears:     input.WarrantyYears,
		InstallationWeeks: input.InstallationWeeks,
		Status:            models.ResponseSubmitted,
		SubmittedAt:       now,
		ValidUntil:        &validUntil,
		IPHash:            ipHash,
		UserAgent:         userAgent,
	}

	_, err = tx.Exec(`
		INSERT INTO vendor_response (id, request_id, vendor_id, vendor_name, vendor_rating, system_size_kw,
			total_price, installment_months, monthly_payment, warranty_years, installation_weeks,
			status, submitted_at, valid_until, ip_hash, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`, response.ID, response.RequestID, response.VendorID, response.VendorName, response.VendorRating,
		response.SystemSizeKw, response.TotalPrice, response.InstallmentMonths, response.MonthlyPayment,
		response.WarrantyYears, response.InstallationWeeks, response.Status, response.SubmittedAt,
		response.ValidUntil, response.IPHash, response.UserAgent)

	if err != nil {
		if isUniqueViolation(err) {
			return models.VendorResponse{}, fmt.Errorf("%w: vendor already responded to this request", ErrInvalidState)
		}
		return models.VendorResponse{}, fmt.Errorf("failed to insert response: %w", err)
	}

	// First response promotes the request to active
	_, err = tx.Exec(`
		UPDATE quote_request SET status = $1 WHERE id = $2 AND status = $3
	`, models.StatusActive, requestID, models.StatusPending)
	if err != nil {
		return models.VendorResponse{}, fmt.Errorf("failed to activate request: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return models.VendorResponse{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return response, nil
}

// ResponsesForRequest returns the request's responses in submission order.
// Fails ErrNotFound for an unknown request rather than returning an empty list.
func (s *Store) ResponsesForRequest(requestID string) ([]models.VendorResponse, error) {
	if _, err := s.RequestByID(requestID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT `+responseColumns+`
		FROM vendor_response
		WHERE request_id = $1
		ORDER BY submitted_at, id
	`, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses: %w", err)
	}
	defer rows.Close()

	return collectResponses(rows)
}

// ResponsesForVendor returns every response the vendor has submitted,
// newest first, across all requests.
func (s *Store) ResponsesForVendor(vendorID string) ([]models.VendorResponse, error) {
	rows, err := s.db.Query(`
		SELECT `+responseColumns+`
		FROM vendor_response
		WHERE vendor_id = $1
		ORDER BY submitted_at DESC, id
	`, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendor responses: %w", err)
	}
	defer rows.Close()

	return collectResponses(rows)
}

func collectResponses(rows *sql.Rows) ([]models.VendorResponse, error) {
	responses := []models.VendorResponse{}
	for rows.Next() {
		response, err := scanResponse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		responses = append(responses, response)
	}
	return responses, rows.Err()
}

func scanResponse(row rowScanner) (models.VendorResponse, error) {
	var response models.VendorResponse
	var warranty, weeks sql.NullInt64
	err := row.Scan(
		&response.ID, &response.RequestID, &response.VendorID, &response.VendorName,
		&response.VendorRating, &response.SystemSizeKw, &response.TotalPrice,
		&response.InstallmentMonths, &response.MonthlyPayment, &warranty, &weeks,
		&response.Status, &response.SubmittedAt, &response.ValidUntil,
		&response.IPHash, &response.UserAgent,
	)
	if err != nil {
		return models.VendorResponse{}, err
	}
	response.WarrantyYears = int(warranty.Int64)
	response.InstallationWeeks = int(weeks.Int64)
	return response, nil
}

// isUniqueViolation matches unique-constraint errors from both supported drivers.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/solarmatch/auth"
	"github.com/danielhkuo/solarmatch/models"
	"github.com/danielhkuo/solarmatch/planner"
)

// SeedDemoData inserts a small set of demo vendors, requests and responses.
// It must be invoked explicitly (the -seed flag); it never runs as a side
// effect of reading state. Calling it twice inserts a second batch.
func SeedDemoData(db *sql.DB) error {
	now := time.Now()

	vendors := []struct {
		name   string
		rating float64
	}{
		{"Shams Solar Co", 4.6},
		{"Desert Sun Installations", 4.2},
	}

	vendorIDs := make([]string, 0, len(vendors))
	for _, v := range vendors {
		id := uuid.NewString()
		_, err := db.Exec(`
			INSERT INTO vendor (id, name, rating, created_at, last_seen_at)
			VALUES ($1, $2, $3, $4, $5)
		`, id, v.name, v.rating, now, now)
		if err != nil {
			return fmt.Errorf("failed to seed vendor %s: %w", v.name, err)
		}
		vendorIDs = append(vendorIDs, id)
	}

	requests := []struct {
		submitter   string
		property    string
		city        string
		monthlyBill int64
	}{
		{"demo-customer-1", models.PropertyResidential, "Riyadh", 850},
		{"demo-customer-2", models.PropertyCommercial, "Jeddah", 2400},
	}

	for i, r := range requests {
		requestID, err := auth.GenerateID(16)
		if err != nil {
			return err
		}
		_, err = db.Exec(`
			INSERT INTO quote_request (id, submitter_id, property_type, address, city, monthly_bill_amount, budget_range, status, submitted_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, requestID, r.submitter, r.property, "123 Demo Street", r.city, r.monthlyBill, "", models.StatusPending, now)
		if err != nil {
			return fmt.Errorf("failed to seed request: %w", err)
		}

		// First demo request gets a response so the active state is visible.
		if i == 0 {
			size := planner.SystemSizeEstimateKw(r.monthlyBill)
			price := planner.BudgetEstimate(size)
			monthly, err := planner.MonthlyPayment(price, 24)
			if err != nil {
				return err
			}

			responseID, err := auth.GenerateID(12)
			if err != nil {
				return err
			}
			validUntil := now.AddDate(0, 1, 0)
			_, err = db.Exec(`
				INSERT INTO vendor_response (id, request_id, vendor_id, vendor_name, vendor_rating, system_size_kw,
					total_price, installment_months, monthly_payment, warranty_years, installation_weeks,
					status, submitted_at, valid_until)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			`, responseID, requestID, vendorIDs[0], vendors[0].name, vendors[0].rating, float64(size),
				price, 24, monthly, 10, 6, models.ResponseSubmitted, now, validUntil)
			if err != nil {
				return fmt.Errorf("failed to seed response: %w", err)
			}

			_, err = db.Exec(`
				UPDATE quote_request SET status = $1 WHERE id = $2
			`, models.StatusActive, requestID)
			if err != nil {
				return fmt.Errorf("failed to activate seeded request: %w", err)
			}
		}
	}

	return nil
}

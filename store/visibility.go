// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"

	"github.com/danielhkuo/solarmatch/models"
	"github.com/danielhkuo/solarmatch/planner"
)

// AvailableRequests returns the open requests a vendor may still respond to:
// pending or active, minus any request the vendor has already quoted.
// With an empty vendorID it returns all open requests. Newest first.
// This is a pure projection over current state; it owns nothing.
func (s *Store) AvailableRequests(vendorID string) ([]models.AvailableRequest, error) {
	rows, err := s.db.Query(`
		SELECT `+requestColumns+`
		FROM quote_request r
		WHERE r.status IN ($1, $2)
		  AND ($3 = '' OR NOT EXISTS (
			SELECT 1 FROM vendor_response vr
			WHERE vr.request_id = r.id AND vr.vendor_id = $3
		  ))
		ORDER BY r.submitted_at DESC, r.id
	`, models.StatusPending, models.StatusActive, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query available requests: %w", err)
	}
	defer rows.Close()

	available := []models.AvailableRequest{}
	for rows.Next() {
		request, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}

		size := planner.SystemSizeEstimateKw(request.MonthlyBillAmount)
		available = append(available, models.AvailableRequest{
			Request:              request,
			SystemSizeKwEstimate: size,
			BudgetEstimate:       planner.BudgetEstimate(size),
		})
	}
	return available, rows.Err()
}

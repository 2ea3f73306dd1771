// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/solarmatch/models"
)

// RegisterVendor creates a vendor profile and returns its generated id.
// Responses always carry the registered name and rating, never
// caller-supplied ones.
func (s *Store) RegisterVendor(input models.RegisterVendorRequest) (models.Vendor, error) {
	if input.Name == "" {
		return models.Vendor{}, validationf("name is required")
	}
	if input.Rating < 0 || input.Rating > 5 {
		return models.Vendor{}, validationf("rating must be between 0.0 and 5.0")
	}

	now := time.Now()
	vendor := models.Vendor{
		ID:         uuid.NewString(),
		Name:       input.Name,
		Rating:     input.Rating,
		CreatedAt:  now,
		LastSeenAt: now,
	}

	_, err := s.db.Exec(`
		INSERT INTO vendor (id, name, rating, created_at, last_seen_at)
		VALUES ($1, $2, $3, $4, $5)
	`, vendor.ID, vendor.Name, vendor.Rating, vendor.CreatedAt, vendor.LastSeenAt)
	if err != nil {
		return models.Vendor{}, fmt.Errorf("failed to insert vendor: %w", err)
	}

	return vendor, nil
}

// VendorByID returns a vendor profile, updating its last_seen_at.
func (s *Store) VendorByID(vendorID string) (models.Vendor, error) {
	var vendor models.Vendor
	err := s.db.QueryRow(`
		SELECT id, name, rating, created_at, last_seen_at
		FROM vendor
		WHERE id = $1
	`, vendorID).Scan(&vendor.ID, &vendor.Name, &vendor.Rating, &vendor.CreatedAt, &vendor.LastSeenAt)

	if err == sql.ErrNoRows {
		return models.Vendor{}, fmt.Errorf("%w: vendor %s", ErrNotFound, vendorID)
	}
	if err != nil {
		return models.Vendor{}, fmt.Errorf("failed to query vendor: %w", err)
	}

	_, err = s.db.Exec(`UPDATE vendor SET last_seen_at = $1 WHERE id = $2`, time.Now(), vendor.ID)
	if err != nil {
		return models.Vendor{}, fmt.Errorf("failed to update vendor last_seen_at: %w", err)
	}

	return vendor, nil
}

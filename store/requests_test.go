// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"testing"
	"time"

	_ "github.com/lib/pq"

	"github.com/danielhkuo/solarmatch/models"
	"github.com/danielhkuo/solarmatch/testutil"
)

func validInput() models.SubmitRequestRequest {
	return models.SubmitRequestRequest{
		SubmitterID:       "customer-1",
		PropertyType:      models.PropertyResidential,
		Address:           "12 Olaya Street",
		City:              "Riyadh",
		MonthlyBillAmount: 850,
		BudgetRange:       "50k-100k",
	}
}

func TestSubmitRequest(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := New(conn)

	request, err := st.SubmitRequest(validInput())
	if err != nil {
		t.Fatalf("SubmitRequest() error = %v", err)
	}

	if request.ID == "" {
		t.Error("Expected a generated request ID")
	}
	if request.Status != models.StatusPending {
		t.Errorf("Status = %s, want pending", request.Status)
	}
	if request.SubmittedAt.IsZero() {
		t.Error("Expected submitted_at to be set")
	}

	// Round-trips through the database
	stored, err := st.RequestByID(request.ID)
	if err != nil {
		t.Fatalf("RequestByID() error = %v", err)
	}
	if stored.SubmitterID != "customer-1" || stored.MonthlyBillAmount != 850 {
		t.Errorf("Stored request mismatch: %+v", stored)
	}
	if stored.QuotesReceived != 0 {
		t.Errorf("QuotesReceived = %d, want 0 for a fresh request", stored.QuotesReceived)
	}
}

func TestSubmitRequest_Validation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := New(conn)

	tests := []struct {
		name   string
		mutate func(*models.SubmitRequestRequest)
	}{
		{"missing submitter", func(r *models.SubmitRequestRequest) { r.SubmitterID = "" }},
		{"missing property type", func(r *models.SubmitRequestRequest) { r.PropertyType = "" }},
		{"bad property type", func(r *models.SubmitRequestRequest) { r.PropertyType = "castle" }},
		{"missing address", func(r *models.SubmitRequestRequest) { r.Address = "" }},
		{"missing city", func(r *models.SubmitRequestRequest) { r.City = "" }},
		{"zero bill", func(r *models.SubmitRequestRequest) { r.MonthlyBillAmount = 0 }},
		{"negative bill", func(r *models.SubmitRequestRequest) { r.MonthlyBillAmount = -850 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)
			_, err := st.SubmitRequest(input)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("SubmitRequest() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestRequestByID_NotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := New(conn)

	_, err := st.RequestByID("no-such-request")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("RequestByID() error = %v, want ErrNotFound", err)
	}
}

func TestRequestsBySubmitter_NewestFirst(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := New(conn)

	first, err := st.SubmitRequest(validInput())
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	second, err := st.SubmitRequest(validInput())
	if err != nil {
		t.Fatal(err)
	}

	// Another customer's request must not appear
	other := validInput()
	other.SubmitterID = "customer-2"
	if _, err := st.SubmitRequest(other); err != nil {
		t.Fatal(err)
	}

	requests, err := st.RequestsBySubmitter("customer-1")
	if err != nil {
		t.Fatalf("RequestsBySubmitter() error = %v", err)
	}

	if len(requests) != 2 {
		t.Fatalf("Expected 2 requests, got %d", len(requests))
	}
	if requests[0].ID != second.ID || requests[1].ID != first.ID {
		t.Errorf("Expected newest first: got %s then %s", requests[0].ID, requests[1].ID)
	}
}

func TestCancelRequest(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := New(conn)

	request, err := st.SubmitRequest(validInput())
	if err != nil {
		t.Fatal(err)
	}

	cancelled, err := st.CancelRequest(request.ID)
	if err != nil {
		t.Fatalf("CancelRequest() error = %v", err)
	}
	if cancelled.Status != models.StatusCancelled {
		t.Errorf("Status = %s, want cancelled", cancelled.Status)
	}
	if cancelled.CancelledAt == nil {
		t.Error("Expected cancelled_at to be set")
	}

	// Cancelling twice must fail - the state is terminal
	_, err = st.CancelRequest(request.ID)
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("Second CancelRequest() error = %v, want ErrInvalidState", err)
	}
}

func TestCancelRequest_NotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := New(conn)

	_, err := st.CancelRequest("no-such-request")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("CancelRequest() error = %v, want ErrNotFound", err)
	}
}

func TestCancelRequest_FromActive(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()
	st := New(conn)

	request, vendor := submitWithVendor(t, st)
	if _, err := st.AttachResponse(request.ID, vendor, validResponseInput(), nil, nil); err != nil {
		t.Fatal(err)
	}

	cancelled, err := st.CancelRequest(request.ID)
	if err != nil {
		t.Fatalf("CancelRequest() error = %v", err)
	}
	if cancelled.Status != models.StatusCancelled {
		t.Errorf("Status = %s, want cancelled", cancelled.Status)
	}

	// A cancelled request is closed to new responses
	vendor2 := registerVendor(t, st, "Second Vendor")
	_, err = st.AttachResponse(request.ID, vendor2, validResponseInput(), nil, nil)
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("AttachResponse() after cancel error = %v, want ErrInvalidState", err)
	}
}
